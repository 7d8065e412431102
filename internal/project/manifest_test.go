package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KingWilliamsGPT/temptacious/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.DefaultManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[engine]
jobs = 4

[[render]]
template = "index.tpl"
context = "ctx.toml"
out = "index.html"

[[render]]
template = "about.tpl"
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Engine.Jobs != 4 {
		t.Errorf("jobs: got %d", m.Engine.Jobs)
	}
	if len(m.Render) != 2 {
		t.Fatalf("render: got %d jobs", len(m.Render))
	}
	first := m.Render[0]
	if first.Template != "index.tpl" || first.Context != "ctx.toml" || first.Out != "index.html" {
		t.Errorf("job 1: got %+v", first)
	}
	if m.Render[1].Out != "" {
		t.Errorf("job 2 out should default empty, got %q", m.Render[1].Out)
	}
	if m.Dir != dir {
		t.Errorf("dir: got %q, want %q", m.Dir, dir)
	}
}

func TestLoadNoJobs(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[engine]\njobs = 1\n")
	_, err := project.Load(path)
	if !errors.Is(err, project.ErrNoJobs) {
		t.Fatalf("expected ErrNoJobs, got %v", err)
	}
}

func TestLoadJobWithoutTemplate(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[[render]]\nout = \"x.html\"\n")
	if _, err := project.Load(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "not = [valid")
	if _, err := project.Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResolve(t *testing.T) {
	m := &project.Manifest{Dir: filepath.Join("some", "dir")}
	if got := m.Resolve("a.tpl"); got != filepath.Join("some", "dir", "a.tpl") {
		t.Errorf("relative: got %q", got)
	}
	abs, _ := filepath.Abs("a.tpl")
	if got := m.Resolve(abs); got != abs {
		t.Errorf("absolute: got %q", got)
	}
	if got := m.Resolve(""); got != "" {
		t.Errorf("empty: got %q", got)
	}
}
