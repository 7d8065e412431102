package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/diagfmt"
	"github.com/KingWilliamsGPT/temptacious/internal/driver"
	"github.com/KingWilliamsGPT/temptacious/internal/project"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [manifest]",
	Short: "Render many templates at once",
	Long: `Batch renders either the jobs of a temptacious.toml manifest or, with
--dir, every *.tpl file under a directory against one shared context`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "maximum parallel renders (0 = number of CPUs)")
	batchCmd.Flags().String("dir", "", "render every *.tpl under this directory instead of using a manifest")
	batchCmd.Flags().String("context", "", "context file for --dir mode")
	batchCmd.Flags().String("out-dir", "", "output directory for --dir mode (default: next to the templates)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}

	if dir != "" {
		return runBatchDir(cmd, dir, jobs)
	}

	manifestPath := project.DefaultManifestName
	if len(args) == 1 {
		manifestPath = args[0]
	}
	return runBatchManifest(cmd, manifestPath, jobs)
}

// runBatchManifest renders the manifest's jobs in parallel, reporting
// each failure without aborting the rest of the batch.
func runBatchManifest(cmd *cobra.Command, manifestPath string, jobs int) error {
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return err
	}
	if jobs == 0 {
		jobs = manifest.Engine.Jobs
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	jobErrs := make([]error, len(manifest.Render))
	for i, job := range manifest.Render {
		i, job := i, job
		g.Go(func() error {
			jobErrs[i] = runJob(cmd, manifest, job)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, job := range manifest.Render {
		if jobErrs[i] != nil {
			failed++
			reportJobError(cmd, manifest.Resolve(job.Template), jobErrs[i])
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", job.Template)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d render jobs failed", failed, len(manifest.Render))
	}
	return nil
}

// runBatchDir renders every *.tpl under dir against one shared context,
// writing each output next to its template (or under --out-dir) with
// the .tpl suffix dropped.
func runBatchDir(cmd *cobra.Command, dir string, jobs int) error {
	contextPath, _ := cmd.Flags().GetString("context")
	outDir, _ := cmd.Flags().GetString("out-dir")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	ctx := map[string]any{}
	if contextPath != "" {
		loaded, err := driver.LoadContext(contextPath)
		if err != nil {
			return err
		}
		ctx = loaded
	}

	results, err := driver.RenderDir(cmd.Context(), dir, ctx, jobs)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = dir
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			reportJobError(cmd, filepath.Join(dir, res.Path), res.Err)
			continue
		}
		outPath := filepath.Join(outDir, strings.TrimSuffix(res.Path, driver.TemplateExt))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, []byte(res.Output), 0o644); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", res.Path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed", failed, len(results))
	}
	return nil
}

func runJob(cmd *cobra.Command, manifest *project.Manifest, job project.Job) error {
	ctx := map[string]any{}
	if job.Context != "" {
		loaded, err := driver.LoadContext(manifest.Resolve(job.Context))
		if err != nil {
			return err
		}
		ctx = loaded
	}

	res, err := driver.RenderFile(manifest.Resolve(job.Template), ctx)
	if err != nil {
		return err
	}

	outPath := manifest.Resolve(job.Out)
	if outPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), res.Output)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(res.Output), 0o644)
}

func reportJobError(cmd *cobra.Command, path string, err error) {
	var te *diag.Error
	if errors.As(err, &te) {
		bag := diag.NewBag(1)
		bag.AddError(te)
		fmt.Fprintf(os.Stderr, "%s: ", path)
		diagfmt.Pretty(os.Stderr, bag, nil, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}
