package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planview/pkg/config"
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/pipeline"
	"github.com/matzehuels/planview/pkg/sink"
)

// renderOpts holds the flags shared by the office and garden commands.
type renderOpts struct {
	formats string  // comma-separated output formats
	dpi     float64 // PNG resolution
	backend string  // PNG rasterizer: native or rsvg
	noShow  bool    // do not open rendered files
	noCache bool    // bypass the artifact cache
	watch   bool    // re-render when the input file changes
}

func (o *renderOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.formats, "format", "f", pipeline.FormatPNG, "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&o.dpi, "dpi", pipeline.DefaultDPI, "PNG resolution in dots per inch")
	cmd.Flags().StringVar(&o.backend, "backend", pipeline.DefaultBackend, "PNG rasterizer: native (default), rsvg")
	cmd.Flags().BoolVar(&o.noShow, "no-show", false, "do not open rendered files in the system viewer")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "re-render whenever the input file changes")
}

// pipelineOptions validates the flags and converts them to pipeline options.
func (o *renderOpts) pipelineOptions(kind pipeline.Kind) (pipeline.Options, error) {
	backend, err := sink.ParseBackend(o.backend)
	if err != nil {
		return pipeline.Options{}, err
	}
	if o.dpi <= 0 {
		return pipeline.Options{}, errors.NewField(errors.ErrCodeInvalidInput, "dpi", "dpi must be positive, got %g", o.dpi)
	}
	opts := pipeline.Options{
		Kind:    kind,
		Formats: parseFormats(o.formats),
		DPI:     o.dpi,
		Backend: string(backend),
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// outputPath names the file written for one view in one format.
type outputPath func(view, format string) string

// job is one load-render-write cycle. The watch loop repeats it.
type job struct {
	input string // config path; empty means built-in defaults
	load  func() (map[string]any, error)
	opts  pipeline.Options
	path  outputPath
	label string
}

// loadInput reads the job's input document.
func (j *job) loadInput() (map[string]any, error) {
	if j.load != nil {
		return j.load()
	}
	return config.Load(j.input)
}

// run renders the job once and returns the written paths.
func (c *CLI) run(ctx context.Context, runner *pipeline.Runner, j *job) ([]string, error) {
	prog := newProgress(c.Logger)

	doc, err := j.loadInput()
	if err != nil {
		return nil, err
	}
	opts := j.opts
	opts.Logger = c.Logger

	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, v := range result.Views {
		for _, format := range opts.Formats {
			path := j.path(v.Name, format)
			if err := writeOutput(path, v.Artifacts[format]); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}
	prog.done("Rendered " + j.label)

	printSuccess("Rendered %s", j.label)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.SceneCount, result.Stats.PrimitiveCount, result.CacheInfo.RenderHit)
	return paths, nil
}

// execute runs the job, opens its outputs unless disabled, and keeps
// re-rendering in watch mode.
func (c *CLI) execute(ctx context.Context, j *job, ro *renderOpts) error {
	if ro.watch && j.input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs an input file")
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	paths, err := c.run(ctx, runner, j)
	if err != nil {
		if !ro.watch {
			return err
		}
		printError("%s", errors.UserMessage(err))
	}
	if !ro.noShow {
		c.show(paths)
	}
	if !ro.watch {
		return nil
	}
	return c.watch(ctx, j.input, func(ctx context.Context) {
		if _, err := c.run(ctx, runner, j); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	})
}

// show opens each rendered file in the system viewer. JSON scenes are not
// opened.
func (c *CLI) show(paths []string) {
	for _, p := range paths {
		if strings.HasSuffix(p, "."+pipeline.FormatJSON) {
			continue
		}
		if err := c.open(p); err != nil {
			c.Logger.Warn("could not open file", "path", p, "err", err)
		}
	}
}

func openFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return browser.OpenFile(abs)
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// basePath strips the extension from an output path so that each format gets
// its own file next to it.
func basePath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output))
}
