// Package store keeps a history of sort runs in a SQL database.
package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/xorm/names"

	"bubblesort/src/sort"
)

const tablePrefix = "bs_"

type Run struct {
	Id          int64     `xorm:"pk autoincr"`
	Name        string    `xorm:"varchar(255) notnull"`
	Kind        string    `xorm:"varchar(16) notnull"`
	Input       []string  `xorm:"blob notnull"`
	Output      []string  `xorm:"blob notnull"`
	Passes      int       `xorm:"notnull"`
	Comparisons int       `xorm:"notnull"`
	Exchanges   int       `xorm:"notnull"`
	EarlyExit   bool      `xorm:"notnull"`
	Created     time.Time `xorm:"created"`
}

func NewRun(name, kind string, in, out []string, st sort.Stats) *Run {
	return &Run{
		Name:        name,
		Kind:        kind,
		Input:       append([]string{}, in...),
		Output:      append([]string{}, out...),
		Passes:      st.Passes,
		Comparisons: st.Comparisons,
		Exchanges:   st.Exchanges,
		EarlyExit:   st.EarlyExit,
	}
}

type Store struct {
	engine *xorm.Engine
}

// Open connects to the database described by a meta URL such as
// "mysql://user:password@(127.0.0.1:3306)/bubblesort" and creates the run
// table when it is missing.
func Open(metaURL string) (*Store, error) {
	driver, dsn, err := ParseMetaURL(metaURL)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err = engine.Ping(); err != nil {
		engine.Close()
		return nil, fmt.Errorf("connect ping failed: %w", err)
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), tablePrefix))
	if err = engine.Sync2(new(Run)); err != nil {
		engine.Close()
		return nil, fmt.Errorf("sync table: %w", err)
	}
	return &Store{engine: engine}, nil
}

// ParseMetaURL splits a meta URL into the driver name and the driver DSN. An
// empty password is taken from META_PASSWORD.
func ParseMetaURL(metaURL string) (driver, dsn string, err error) {
	p := strings.Index(metaURL, "://")
	if p < 0 {
		return "", "", fmt.Errorf("invalid meta url %q: missing scheme", metaURL)
	}
	driver, dsn = metaURL[:p], metaURL[p+3:]
	if driver != "mysql" {
		return "", "", fmt.Errorf("unsupported meta scheme %q", driver)
	}

	if at := strings.LastIndex(dsn, "@"); at > 0 {
		cred := dsn[:at]
		if user, passwd, found := strings.Cut(cred, ":"); found && passwd == "" {
			if env := os.Getenv("META_PASSWORD"); env != "" {
				dsn = user + ":" + env + dsn[at:]
			}
		}
	}
	if !strings.Contains(dsn, "parseTime=") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}
	return driver, dsn, nil
}

func (s *Store) Save(r *Run) error {
	if _, err := s.engine.Insert(r); err != nil {
		return fmt.Errorf("insert run %s: %w", r.Name, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	sess := s.engine.Desc("id")
	if limit > 0 {
		sess = sess.Limit(limit, 0)
	}
	if err := sess.Find(&runs); err != nil {
		return nil, fmt.Errorf("find runs: %w", err)
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}
