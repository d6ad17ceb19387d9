package features

import (
	"path/filepath"
	"time"
)

const (
	// FeaturesDirName is the directory name used under both docs_dir and site_dir.
	FeaturesDirName = "features"
	// Pattern selects feature files inside the features directory.
	Pattern = "*.json"
)

// Paths holds the two roots supplied by the build tool.
type Paths struct {
	DocsDir string
	SiteDir string
}

// Source returns <docs_dir>/features.
func (p Paths) Source() string { return filepath.Join(p.DocsDir, FeaturesDirName) }

// Dest returns <site_dir>/features.
func (p Paths) Dest() string { return filepath.Join(p.SiteDir, FeaturesDirName) }

// CopiedFile describes one file written into the destination directory.
type CopiedFile struct {
	Name    string    `json:"name"`
	Source  string    `json:"source"`
	Dest    string    `json:"dest"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Result summarises a Copy run.
type Result struct {
	Source        string        `json:"source"`
	Dest          string        `json:"dest"`
	SourceMissing bool          `json:"source_missing"`
	DryRun        bool          `json:"dry_run,omitempty"`
	Files         []CopiedFile  `json:"files"`
	Duration      time.Duration `json:"duration"`
}

// Count returns the number of files copied.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Files)
}

// Bytes returns the total size of the copied files.
func (r *Result) Bytes() int64 {
	if r == nil {
		return 0
	}
	var n int64
	for _, f := range r.Files {
		n += f.Size
	}
	return n
}

// Names returns the copied file names in copy order.
func (r *Result) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		names = append(names, f.Name)
	}
	return names
}
