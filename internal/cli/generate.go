package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/label"
	"github.com/agilomatrix/racklabel/pkg/pipeline"
	"github.com/agilomatrix/racklabel/pkg/tabular"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	variant string // label layout variant (v1 or v2)
	output  string // output path (derived from variant if empty)
	formats []string
	styles  string // optional TOML style overlay
	noCache bool
	refresh bool
	plain   bool // disable the progress TUI
}

// generateCommand creates the generate command.
//
// Default options:
//   - variant: v1 (two part rows per label block)
//   - format: pdf
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{variant: string(pipeline.DefaultVariant), formats: []string{pipeline.FormatPDF}}

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate printable labels from a spreadsheet",
		Long: `Generate printable rack labels from an Excel or CSV file.

The file must contain part number, description and location columns;
column names are inferred from keywords (PART/NO, DESC, LOC/POS) with a
positional fallback. Rows sharing a location become one label block.

Examples:
  racklabel generate parts.xlsx
  racklabel generate parts.csv --variant v2 -o labels.pdf
  racklabel generate parts.xlsx --format pdf --format json
  racklabel generate parts.xlsx --styles custom.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", opts.variant, "label layout: v1 (two parts per label) or v2 (single part)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from variant if empty)")
	cmd.Flags().StringArrayVar(&opts.formats, "format", opts.formats, "output formats: pdf, json (repeatable)")
	cmd.Flags().StringVar(&opts.styles, "styles", "", "TOML style overlay for layout tuning")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached artifacts")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable the interactive progress display")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, path string, opts generateOpts) error {
	variant := label.Variant(opts.variant)
	if err := label.ValidateVariant(variant); err != nil {
		return err
	}

	table, err := tabular.LoadFile(path)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded input", "file", path, "rows", len(table.Rows), "columns", len(table.Columns))

	pipeOpts := pipeline.Options{
		Variant: variant,
		Formats: opts.formats,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	}
	if opts.styles != "" {
		st, err := label.LoadStyles(opts.styles, variant)
		if err != nil {
			return err
		}
		pipeOpts.Styles = &st
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	track := newProgress(c.Logger)
	result, err := c.execute(ctx, runner, table, pipeOpts, opts.plain)
	if err != nil {
		return err
	}

	if result.Document == nil {
		printWarning("no labels were generated - check that the file has the expected columns")
		return errors.New(errors.ErrCodeNoLabels, "no labels generated from %s", path)
	}

	for _, g := range result.Skipped {
		printWarning("skipped location %q: %v", g.Location, g.Err)
	}

	for _, format := range pipeOpts.Formats {
		out := outputPath(opts.output, variant, format)
		if err := os.WriteFile(out, result.Artifacts[format], 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", out)
		}
		printSuccess("wrote %s (%d pages)", StyleValue.Render(out), result.Stats.Pages)
	}

	track.done(fmt.Sprintf("Generated %d pages from %d rows", result.Stats.Pages, result.Stats.Rows))
	return nil
}

// execute runs the pipeline, attaching the progress TUI when stderr is a
// terminal and --plain was not given.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, table tabular.Table, opts pipeline.Options, plain bool) (*pipeline.Result, error) {
	if plain || !isatty.IsTerminal(os.Stderr.Fd()) {
		opts.Progress = func(index, total int, location string) {
			c.Logger.Debug("processing location", "index", index+1, "total", total, "location", location)
		}
		return runner.Execute(ctx, table, opts)
	}

	prog := tea.NewProgram(newProgressModel(), tea.WithOutput(os.Stderr))
	opts.Progress = func(index, total int, location string) {
		prog.Send(progressMsg{index: index, total: total, location: location})
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// result and runErr are only read after done is closed, so the TUI
	// quitting early (ctrl+c) cannot race the pipeline goroutine.
	done := make(chan struct{})
	var (
		result *pipeline.Result
		runErr error
	)
	go func() {
		defer close(done)
		result, runErr = runner.Execute(runCtx, table, opts)
		prog.Send(doneMsg{})
	}()

	model, err := prog.Run()
	if err != nil {
		cancel()
		<-done
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "progress display")
	}
	if m, ok := model.(progressModel); ok && m.interrupted {
		cancel()
		<-done
		return nil, context.Canceled
	}

	<-done
	return result, runErr
}

// outputPath derives the artifact filename. Explicit --output wins for
// the first format; other formats swap the extension.
func outputPath(output string, v label.Variant, format string) string {
	if output != "" {
		if strings.HasSuffix(strings.ToLower(output), "."+format) {
			return output
		}
		if ext := strings.LastIndex(output, "."); ext > 0 {
			return output[:ext] + "." + format
		}
		return output + "." + format
	}

	base := "multiplepart_labels"
	if v == label.VariantSingle {
		base = "singlepart_labels"
	}
	return base + "." + format
}
