// Package dataset reads and writes the value sequences handled by the
// command line tools. A sequence is a file of values separated by white
// space or commas.
package dataset

import (
	"archive/tar"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Sequence struct {
	Name   string
	Fields []string
}

// Parse splits the content of r into fields.
func Parse(name string, r io.Reader) (Sequence, error) {
	seq := Sequence{Name: name}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)
	for scanner.Scan() {
		seq.Fields = append(seq.Fields, strings.FieldsFunc(scanner.Text(), isSeparator)...)
	}
	if err := scanner.Err(); err != nil {
		return seq, fmt.Errorf("read %s: %w", name, err)
	}
	return seq, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Load reads the sequences stored at path. A tar archive yields one sequence
// per regular entry, a directory one sequence per file below it (hidden
// entries are skipped), anything else a single sequence.
func Load(path string) ([]Sequence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loadDir(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if strings.HasSuffix(path, ".tar") {
		return ReadTar(file)
	}
	seq, err := Parse(filepath.Base(path), file)
	if err != nil {
		return nil, err
	}
	return []Sequence{seq}, nil
}

func loadDir(root string) ([]Sequence, error) {
	var seqs []Sequence
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		// Skip directories
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		name, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		seq, err := Parse(filepath.ToSlash(name), file)
		if err != nil {
			return err
		}
		seqs = append(seqs, seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seqs, nil
}

// ReadTar reads one sequence per regular entry of a tar stream.
func ReadTar(r io.Reader) ([]Sequence, error) {
	var seqs []Sequence
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return seqs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		seq, err := Parse(header.Name, tr)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
}

// Bytes renders the sequence one value per line.
func (s Sequence) Bytes() []byte {
	var buf bytes.Buffer
	for _, f := range s.Fields {
		buf.WriteString(f)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteTar writes every sequence as one entry of a tar stream.
func WriteTar(w io.Writer, seqs []Sequence) error {
	tw := tar.NewWriter(w)
	for _, seq := range seqs {
		if err := writeEntry(tw, seq); err != nil {
			return err
		}
	}
	return tw.Close()
}

func writeEntry(tw *tar.Writer, seq Sequence) error {
	body := seq.Bytes()
	header := &tar.Header{
		Name:     seq.Name,
		Mode:     0644,
		Size:     int64(len(body)),
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", seq.Name, err)
	}
	if _, err := tw.Write(body); err != nil {
		return fmt.Errorf("write %s: %w", seq.Name, err)
	}
	return nil
}
