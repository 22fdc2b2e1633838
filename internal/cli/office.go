package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planview/pkg/config"
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/office"
	"github.com/matzehuels/planview/pkg/pipeline"
)

const defaultOfficeName = "garage_office"

// officeCommand creates the office command for drawing the garage office.
func (c *CLI) officeCommand() *cobra.Command {
	var (
		configPath string
		outputDir  string
		name       string
		view       string
		ro         renderOpts
	)

	cmd := &cobra.Command{
		Use:   "office",
		Short: "Render the garage office plan and front elevation",
		Long: `Render the garage office plan and front elevation.

Every position in both drawings is derived from the dimensions in the config
file (YAML, TOML or JSON). Without --config the reference office is drawn.

Outputs are written as <name>_top_down.<format> and
<name>_front_elevation.<format> in the output directory.`,
		Example: `  planview office --config office.yaml
  planview office --config office.toml --format svg,pdf --no-show
  planview office --config office.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOutputName(name); err != nil {
				return err
			}
			opts, err := ro.pipelineOptions(pipeline.KindOffice)
			if err != nil {
				return err
			}
			opts.View = view

			j := &job{
				input: configPath,
				opts:  opts,
				label: name,
				path: func(v, format string) string {
					return filepath.Join(outputDir, pipeline.FileName(name, v, format))
				},
			}
			if configPath == "" {
				c.Logger.Info("No --config given, drawing the reference office")
				j.load = defaultOfficeDocument
			}
			return c.execute(cmd.Context(), j, &ro)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "office dimensions file (.yaml, .toml or .json)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for rendered files")
	cmd.Flags().StringVarP(&name, "name", "n", defaultOfficeName, "base name of the output files")
	cmd.Flags().StringVar(&view, "view", "", fmt.Sprintf("render a single view: %s or %s", office.ViewTopDown, office.ViewFrontElevation))
	ro.addFlags(cmd)

	return cmd
}

// defaultOfficeDocument returns the reference office as a config document.
func defaultOfficeDocument() (map[string]any, error) {
	data, err := json.Marshal(office.Defaults())
	if err != nil {
		return nil, err
	}
	return config.Decode(data, config.FormatJSON)
}
