package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/diagfmt"
	"github.com/KingWilliamsGPT/temptacious/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file.tpl",
	Short: "Render a template file",
	Long:  `Render substitutes a template's directives against a context mapping and prints the result`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("context", "", "context file (.toml, .json, or .msgpack)")
	renderCmd.Flags().String("out", "", "write output to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	templatePath := args[0]

	contextPath, err := cmd.Flags().GetString("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	ctx := map[string]any{}
	if contextPath != "" {
		ctx, err = driver.LoadContext(contextPath)
		if err != nil {
			return err
		}
	}

	res, err := driver.RenderFile(templatePath, ctx)
	if err != nil {
		var te *diag.Error
		if errors.As(err, &te) && res != nil {
			bag := diag.NewBag(1)
			bag.AddError(te)
			opts := diagfmt.PrettyOpts{
				Color:      useColor(cmd, os.Stderr),
				ShowSource: true,
			}
			diagfmt.Pretty(os.Stderr, bag, res.FileSet, opts)
			return fmt.Errorf("rendering %s failed", templatePath)
		}
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, []byte(res.Output), 0o644)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), res.Output)
	return err
}
