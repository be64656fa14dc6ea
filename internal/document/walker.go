package document

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Failure records one file the walker could not process.
type Failure struct {
	File string
	Err  error
}

// WalkReport summarizes one directory walk.
type WalkReport struct {
	FilesAttempted int
	FilesSucceeded int
	Failures       []Failure
	TotalChunks    int
}

// WalkDirectory recursively discovers supported files under root and
// normalizes each one. Files are processed in lexicographic path order so
// re-runs over an unchanged tree produce identical output. A single file's
// failure is recorded and the walk continues; only a failure to read the
// tree itself aborts.
func (p *Processor) WalkDirectory(root string) ([]ChunkRecord, WalkReport, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, WalkReport{}, err
	}

	var (
		records []ChunkRecord
		report  WalkReport
	)
	for _, path := range paths {
		report.FilesAttempted++
		recs, err := p.Normalize(path)
		if err != nil {
			slog.Warn("file skipped", "file", filepath.Base(path), "error", err)
			report.Failures = append(report.Failures, Failure{File: filepath.Base(path), Err: err})
			continue
		}
		report.FilesSucceeded++
		records = append(records, recs...)
		slog.Info("file processed", "file", filepath.Base(path), "chunks", len(recs))
	}
	report.TotalChunks = len(records)
	return records, report, nil
}
