// Package project loads temptacious.toml batch manifests.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultManifestName is looked for when no manifest path is given.
const DefaultManifestName = "temptacious.toml"

// Job describes one template to render: where it is, which context
// mapping to resolve against, and where the output goes.
type Job struct {
	Template string `toml:"template"`
	Context  string `toml:"context"`
	Out      string `toml:"out"`
}

// Manifest is a parsed temptacious.toml.
type Manifest struct {
	Engine struct {
		Jobs int `toml:"jobs"`
	} `toml:"engine"`
	Render []Job `toml:"render"`

	// Dir is the manifest's directory; relative job paths resolve
	// against it.
	Dir string `toml:"-"`
}

var (
	// ErrNoJobs indicates a manifest without a [[render]] section.
	ErrNoJobs = errors.New("manifest declares no render jobs")
)

// Load parses a manifest file and validates its jobs.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse manifest: %w", path, err)
	}
	if len(m.Render) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoJobs)
	}
	for i, job := range m.Render {
		if job.Template == "" {
			return nil, fmt.Errorf("%s: render job %d has no template", path, i+1)
		}
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// Resolve turns a job-relative path into one rooted at the manifest dir.
func (m *Manifest) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir, path)
}
