package permgen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// chunker writes records as CSV lines, rotating to a new numbered file
// once the current one holds limit lines. Exactly one file handle is
// open at any time.
type chunker struct {
	dir    string
	prefix string
	ext    string
	limit  int

	file  *os.File
	inner *csv.Writer
	count int

	files int
	total int
}

func createChunker(dir, prefix, ext string, limit int) (*chunker, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	c := chunker{
		dir:    dir,
		prefix: prefix,
		ext:    ext,
		limit:  limit,
	}
	if err := c.rotate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *chunker) Write(rec []string) error {
	if c.count >= c.limit {
		if err := c.rotate(); err != nil {
			return err
		}
	}
	if err := c.inner.Write(rec); err != nil {
		return err
	}
	c.count++
	c.total++
	return nil
}

func (c *chunker) Close() error {
	return c.closeFile()
}

func (c *chunker) rotate() error {
	if err := c.closeFile(); err != nil {
		return err
	}
	c.files++
	file := fmt.Sprintf("%s_%d.%s", c.prefix, c.files, c.ext)
	f, err := os.Create(filepath.Join(c.dir, file))
	if err != nil {
		return err
	}
	c.file, c.inner, c.count = f, csv.NewWriter(f), 0
	return nil
}

func (c *chunker) closeFile() error {
	if c.file == nil {
		return nil
	}
	c.inner.Flush()
	err := c.inner.Error()
	if e := c.file.Close(); err == nil {
		err = e
	}
	c.file, c.inner = nil, nil
	return err
}
