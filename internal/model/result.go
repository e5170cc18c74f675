package model

import (
	"io/fs"
	"time"
)

const (
	// KindDirectory marks a manifest entry that materializes a directory.
	KindDirectory = "directory"
	// KindFile marks a manifest entry that materializes a rendered file.
	KindFile = "file"
)

const (
	// StatusWouldCreate indicates a plan pass would create the entry.
	StatusWouldCreate = "would_create"
	// StatusWouldReplace indicates the entry path is already occupied and an
	// overwrite run would replace it.
	StatusWouldReplace = "would_replace"
)

// CreatedPath records one materialized manifest entry.
type CreatedPath struct {
	Path string
	Kind string
}

// ScaffoldResult captures the outcome of one scaffold run. When a run aborts,
// Created holds the entries written before the failure, in manifest order.
type ScaffoldResult struct {
	Root     string
	Created  []CreatedPath
	Duration time.Duration
}

// Paths returns the created paths in manifest order.
func (r *ScaffoldResult) Paths() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Created))
	for _, c := range r.Created {
		out = append(out, c.Path)
	}
	return out
}

// PlannedEntry describes what one manifest entry would materialize.
type PlannedEntry struct {
	Path   string
	Kind   string
	Status string
	Mode   fs.FileMode
	// Size is the rendered, encoded byte count for file entries; zero for
	// directories.
	Size int
}

// Plan is the outcome of a dry-run pass over a manifest.
type Plan struct {
	Root       string
	RootExists bool
	Entries    []PlannedEntry
}
