package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// TrimExt returns filename without its final extension.
func TrimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// NormalizeName makes a molecule name usable as a directory and file
// stem by replacing spaces with underscores.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// JobName derives a job name from an input log path: the base name
// without its extension, normalized. A trailing .gz counts as part of
// the extension.
func JobName(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(base), ".gz") {
		base = TrimExt(base)
	}
	return NormalizeName(TrimExt(base))
}

// openInput opens path for reading, transparently decompressing files
// with a .gz extension.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

// gzipReadCloser closes both the gzip stream and the file under it.
type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	err := g.gz.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadFile reads a file and returns a slice of strings of the lines
func ReadFile(filename string) ([]string, error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(string(b)), "\n"), nil
}
