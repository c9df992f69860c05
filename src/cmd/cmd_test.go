package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bubblesort/src/dataset"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = old })

	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"bubblesort", "--no-agent"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSortStdin(t *testing.T) {
	out, err := runApp(t, "5 3 8 4 2\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 5 8\n", out)
}

func TestSortEmptyStdin(t *testing.T) {
	out, err := runApp(t, "", "sort")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestSortStats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rev.txt", "5,4,3,2,1")
	out, err := runApp(t, "", "sort", "--stats", path)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5\n"+
		"rev.txt: passes=4 comparisons=10 exchanges=10 early-exit=false\n", out)
}

func TestSortSortedStats(t *testing.T) {
	out, err := runApp(t, "1 2 3 4 5", "sort", "--list=false", "--stats", "-")
	require.NoError(t, err)
	assert.Equal(t, "stdin: passes=1 comparisons=4 exchanges=0 early-exit=true\n", out)
}

func TestSortTree(t *testing.T) {
	out, err := runApp(t, "3 1 2", "sort", "--tree")
	require.NoError(t, err)
	assert.Equal(t, ".\n"+
		"└── stdin\n"+
		"    ├── pass 1: 2 exchanges\n"+
		"    │   ├── swap [0] 3 > [1] 1\n"+
		"    │   └── swap [1] 3 > [2] 2\n"+
		"    └── pass 2: 0 exchanges\n", out)
}

func TestSortDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "2 1")
	writeFile(t, dir, "b.txt", "-1.5 3 0")
	out, err := runApp(t, "", "sort", "--type", "float", dir)
	require.NoError(t, err)
	assert.Equal(t, "a.txt: 1 2\nb.txt: -1.5 0 3\n", out)
}

func TestSortTypeFromConfig(t *testing.T) {
	dir := t.TempDir()
	conf := writeFile(t, dir, "bubblesort.yaml", "type: string\nlog-level: warn\n")
	out, err := runApp(t, "pear apple fig", "--config", conf, "sort")
	require.NoError(t, err)
	assert.Equal(t, "apple fig pear\n", out)

	// the flag wins over the file
	_, err = runApp(t, "pear apple fig", "--config", conf, "sort", "--type", "int")
	assert.ErrorContains(t, err, "invalid syntax")
}

func TestSortErrors(t *testing.T) {
	_, err := runApp(t, "1 NaN 2", "sort", "--type", "float")
	assert.ErrorContains(t, err, "NaN is not comparable")

	_, err = runApp(t, "1 2", "sort", "--type", "complex")
	assert.ErrorContains(t, err, "unknown element type")

	_, err = runApp(t, "", "sort", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "load")
}

func TestSortNoInputOnTerminal(t *testing.T) {
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return true }
	defer func() { stdinIsTerminal = old }()

	app := NewApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"bubblesort", "--no-agent", "sort"})
	assert.ErrorContains(t, err, "no input")
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(src, 0755))
	writeFile(t, src, "x", "3 2 1")
	writeFile(t, src, "y", "9 7 8")
	dst := filepath.Join(dir, "out.tar")

	out, err := runApp(t, "", "pack", src, dst)
	require.NoError(t, err)
	assert.Equal(t, dst+"\n", out)

	seqs, err := dataset.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Sequence{
		{Name: "x", Fields: []string{"1", "2", "3"}},
		{Name: "y", Fields: []string{"7", "8", "9"}},
	}, seqs)
}

func TestPackInvalidArgs(t *testing.T) {
	dir := t.TempDir()
	_, err := runApp(t, "", "pack", "--pack-size", "8", dir, filepath.Join(dir, "out.tar"))
	assert.ErrorIs(t, err, os.ErrInvalid)

	_, err = runApp(t, "", "pack", dir, filepath.Join(dir, "out.zip"))
	assert.ErrorIs(t, err, os.ErrInvalid)
}

func TestHistoryRequiresMetaURL(t *testing.T) {
	_, err := runApp(t, "", "history")
	assert.ErrorContains(t, err, "--meta-url is required")
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("")
	require.NoError(t, err)
	assert.Equal(t, kindInt, k)

	k, err = parseKind("string")
	require.NoError(t, err)
	assert.Equal(t, kindString, k)

	_, err = parseKind("bytes")
	assert.Error(t, err)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "type: float\nmeta-url: mysql://root:@(db:3306)/bs\nlog-level: debug\n")
	conf, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Type: "float", MetaURL: "mysql://root:@(db:3306)/bs", LogLevel: "debug"}, conf)

	bad := writeFile(t, dir, "bad.yaml", "type: [")
	_, err = readConfig(bad)
	assert.Error(t, err)
}
