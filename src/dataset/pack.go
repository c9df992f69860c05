package dataset

import (
	"archive/tar"
	"os"
	"strconv"
	"strings"
)

// Pack writes seqs into tar volumes of at most maxSize content bytes. The
// first volume is dst, the following ones are named dst_1.tar, dst_2.tar and
// so on. A sequence is never split, so a single sequence larger than maxSize
// fills a volume on its own. Pack returns the paths it created.
func Pack(dst string, seqs []Sequence, maxSize int64) ([]string, error) {
	var (
		paths       []string
		currentFile *os.File
		currentTar  *tar.Writer
		currentSize int64
	)
	closeCurrent := func() error {
		if currentTar == nil {
			return nil
		}
		err := currentTar.Close()
		if cerr := currentFile.Close(); err == nil {
			err = cerr
		}
		currentTar, currentFile = nil, nil
		return err
	}
	defer closeCurrent()

	for _, seq := range seqs {
		size := int64(len(seq.Bytes()))
		if currentTar != nil && currentSize > 0 && currentSize+size > maxSize {
			if err := closeCurrent(); err != nil {
				return paths, err
			}
		}
		if currentTar == nil {
			path := volumePath(dst, len(paths))
			file, err := os.Create(path)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
			currentFile, currentTar, currentSize = file, tar.NewWriter(file), 0
		}
		if err := writeEntry(currentTar, seq); err != nil {
			return paths, err
		}
		currentSize += size
	}
	if currentTar == nil {
		// nothing to pack still leaves an empty archive at dst
		file, err := os.Create(dst)
		if err != nil {
			return paths, err
		}
		paths = append(paths, dst)
		currentFile, currentTar = file, tar.NewWriter(file)
	}
	return paths, closeCurrent()
}

func volumePath(dst string, index int) string {
	if index == 0 {
		return dst
	}
	base := strings.TrimSuffix(dst, ".tar")
	return base + "_" + strconv.Itoa(index) + ".tar"
}
