// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/neomantra/ymdflag"
)

const ymdPathFormat = "2006" + string(filepath.Separator) + "01" + string(filepath.Separator) + "02"

// Partitioner computes and parses the canonical on-disk layout for
// EventLog files: {base}/{SYMBOL}/{YYYY}/{MM}/{DD}.eventlog.parquet.
// Generalized from the teacher's internal/file/split.go, which builds
// an equivalent "<dataset>/<symbol>/Y/M/D/<file>" tree for DBN files.
type Partitioner struct {
	BaseDir string
}

// NewPartitioner returns a Partitioner rooted at baseDir.
func NewPartitioner(baseDir string) *Partitioner {
	return &Partitioner{BaseDir: baseDir}
}

// PathFor returns the partition file path for symbol on the UTC
// calendar date that unixNanos falls on.
func (p *Partitioner) PathFor(symbol string, unixNanos int64) string {
	t := time.Unix(0, unixNanos).UTC()
	return p.pathForDate(symbol, t)
}

func (p *Partitioner) pathForDate(symbol string, t time.Time) string {
	datePath := t.Format(ymdPathFormat)
	dir := filepath.Join(p.BaseDir, strings.ToUpper(symbol), filepath.Dir(datePath))
	return filepath.Join(dir, filepath.Base(datePath)+FileExtension)
}

// EnsureDir creates the parent directory of PathFor(symbol, unixNanos)
// if it does not already exist.
func (p *Partitioner) EnsureDir(symbol string, unixNanos int64) error {
	path := p.PathFor(symbol, unixNanos)
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// ExtractSymbol recovers the symbol component from a path previously
// produced by PathFor.
func (p *Partitioner) ExtractSymbol(path string) (string, error) {
	rel, err := filepath.Rel(p.BaseDir, path)
	if err != nil {
		return "", fmt.Errorf("eventlog: path %q is not under base dir %q: %w", path, p.BaseDir, err)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 4 {
		return "", newFormatError("path does not match {SYMBOL}/{YYYY}/{MM}/{DD} layout: " + path)
	}
	return parts[0], nil
}

// ExtractDate recovers the UTC calendar date from a path previously
// produced by PathFor.
func (p *Partitioner) ExtractDate(path string) (time.Time, error) {
	rel, err := filepath.Rel(p.BaseDir, path)
	if err != nil {
		return time.Time{}, fmt.Errorf("eventlog: path %q is not under base dir %q: %w", path, p.BaseDir, err)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 4 {
		return time.Time{}, newFormatError("path does not match {SYMBOL}/{YYYY}/{MM}/{DD} layout: " + path)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, newFormatError("invalid year component: " + parts[1])
	}
	month, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, newFormatError("invalid month component: " + parts[2])
	}
	dayStr := strings.TrimSuffix(parts[3], FileExtension)
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, newFormatError("invalid day component: " + dayStr)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ListSymbols returns the name of every immediate subdirectory of the
// base directory, sorted by name. Subdirectories are not checked for
// partition files.
func (p *Partitioner) ListSymbols() ([]string, error) {
	entries, err := os.ReadDir(p.BaseDir)
	if err != nil {
		return nil, newIOError("list_symbols", err)
	}
	var symbols []string
	for _, e := range entries {
		if e.IsDir() {
			symbols = append(symbols, e.Name())
		}
	}
	return symbols, nil
}

// ListFiles returns every partition file path for symbol, in
// directory-walk order (which, given the YYYY/MM/DD layout, is also
// ascending date order).
func (p *Partitioner) ListFiles(symbol string) ([]string, error) {
	root := filepath.Join(p.BaseDir, strings.ToUpper(symbol))
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, FileExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, newIOError("list_files", err)
	}
	return files, nil
}

// ymdInt formats t as a YYYYMMDD integer using the same library the
// teacher uses for this purpose, for diagnostics and log fields.
func ymdInt(t time.Time) int {
	return ymdflag.TimeToYMD(t)
}
