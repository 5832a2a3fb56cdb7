package results

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default scan options, matching the layout written by the evaluation
// harness: <scene>_case<id>/results.json.
const (
	DefaultFileName      = "results.json"
	DefaultCaseDelimiter = "_case"
)

// ScanOptions configures how case directories are recognized and read.
type ScanOptions struct {
	FileName      string // result file name inside each case directory
	CaseDelimiter string // scene/case separator in directory names
}

func (opts ScanOptions) withDefaults() ScanOptions {
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if opts.CaseDelimiter == "" {
		opts.CaseDelimiter = DefaultCaseDelimiter
	}
	return opts
}

// Scan enumerates the immediate child directories of root and loads the
// result file of every recognized case. Per-case problems become
// diagnostic events and counters; only an unreadable root is an error.
// The observer may be nil.
func Scan(root string, opts ScanOptions, observer ScanObserver) (Collection, error) {
	opts = opts.withDefaults()
	entries, err := os.ReadDir(root)
	if err != nil {
		return Collection{}, fmt.Errorf("read results dir: %w", err)
	}

	// os.ReadDir sorts by name, so candidates and everything derived
	// from them keep a stable order.
	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !strings.Contains(entry.Name(), opts.CaseDelimiter) {
			continue
		}
		candidates = append(candidates, entry.Name())
	}

	if observer != nil {
		observer.OnScanStart(root, len(candidates))
	}

	collection := NewCollection(root)
	collection.Counts.Directories = len(candidates)

	emit := func(event CaseEvent) {
		collection.Events = append(collection.Events, event)
		if observer != nil {
			observer.OnCaseEvent(event)
		}
	}

	for _, name := range candidates {
		scene, caseID, ok := splitCaseName(name, opts.CaseDelimiter)
		if !ok {
			collection.Counts.SkippedName++
			emit(CaseEvent{Type: CaseSkippedName, Dir: name})
			continue
		}

		path := filepath.Join(root, name, opts.FileName)
		metrics, droppedValues, err := ParseCaseFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				collection.Counts.Missing++
				emit(CaseEvent{Type: CaseMissing, Dir: name, Scene: scene, CaseID: caseID, Path: path})
			} else {
				collection.Counts.Malformed++
				emit(CaseEvent{Type: CaseMalformed, Dir: name, Scene: scene, CaseID: caseID, Path: path, Detail: err.Error()})
			}
			continue
		}

		for _, location := range droppedValues {
			collection.Counts.Dropped++
			emit(CaseEvent{Type: CaseValueDropped, Dir: name, Scene: scene, CaseID: caseID, Path: path, Detail: location})
		}

		// Distinct directory names can still collide on (scene, case):
		// "lego_case01" and "lego_case1" both parse to (lego, 1). The
		// later directory in sort order wins.
		if collection.Has(scene, caseID) {
			emit(CaseEvent{Type: CaseReplaced, Dir: name, Scene: scene, CaseID: caseID})
		}
		collection.Add(scene, caseID, metrics)
		collection.Counts.Loaded++
		emit(CaseEvent{Type: CaseLoaded, Dir: name, Scene: scene, CaseID: caseID, Path: path})
	}

	if observer != nil {
		observer.OnScanEnd(collection)
	}
	return collection, nil
}

// splitCaseName splits a directory name like "lego_case3" into its
// scene name and case id. The name must contain the delimiter exactly
// once and end in a non-negative integer; scene names may themselves
// contain underscores ("scene0686_01_case5").
func splitCaseName(name, delimiter string) (string, int, bool) {
	parts := strings.Split(name, delimiter)
	if len(parts) != 2 {
		return "", 0, false
	}
	caseID, err := strconv.Atoi(parts[1])
	if err != nil || caseID < 0 {
		return "", 0, false
	}
	return parts[0], caseID, true
}
