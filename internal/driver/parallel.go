package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

// TemplateExt is the extension batch rendering picks up.
const TemplateExt = ".tpl"

// DirResult is the outcome of rendering one template from a directory.
type DirResult struct {
	Path    string // template path relative to the directory
	Output  string
	FileSet *source.FileSet
	Err     error
}

// listTemplates returns the sorted relative paths of all *.tpl files
// under dir.
func listTemplates(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, TemplateExt) {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// RenderDir renders every *.tpl under dir in parallel. Independent
// renders are safe to run concurrently as long as each gets its own
// scope; workers share the loaded context mapping read-only and fork it
// per render. Results come back in the deterministic sorted-path order,
// render failures recorded per file rather than aborting the batch.
func RenderDir(ctx context.Context, dir string, tmplCtx map[string]any, jobs int) ([]DirResult, error) {
	files, err := listTemplates(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RenderFile(filepath.Join(dir, rel), tmplCtx)
			out := DirResult{Path: rel, Err: err}
			if res != nil {
				out.Output = res.Output
				out.FileSet = res.FileSet
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CollectErrors gathers the render errors of a batch into a sorted bag.
func CollectErrors(results []DirResult) *diag.Bag {
	bag := diag.NewBag(len(results))
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		var te *diag.Error
		if errors.As(r.Err, &te) {
			bag.AddError(te)
			continue
		}
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.UnknownCode,
			Message:  r.Err.Error(),
		})
	}
	bag.Sort()
	return bag
}
