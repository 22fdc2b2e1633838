package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/planview/pkg/pipeline"
)

const (
	defaultSectionsFile = "sections.yaml"
	defaultGardenOutput = "garden_map.png"
)

// gardenCommand creates the garden command for drawing the section map.
func (c *CLI) gardenCommand() *cobra.Command {
	var (
		dataFile string
		output   string
		title    string
		ro       renderOpts
	)

	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Render the garden section map",
		Long: `Render the garden section map.

The data file lists the garden sections (rectangles given by two corners or
polygons given by their vertices) and the plants inside them. The map is
cropped to the sections and plants plus a fixed margin.

With several formats, each is written next to --output with its own extension.`,
		Example: `  planview garden --data-file sections.yaml
  planview garden --data-file sections.toml --output out/garden.svg --format svg,png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ro.pipelineOptions(pipeline.KindGarden)
			if err != nil {
				return err
			}
			opts.Title = title

			base := basePath(output)
			j := &job{
				input: dataFile,
				opts:  opts,
				label: "garden map",
				path: func(_, format string) string {
					return base + "." + format
				},
			}
			return c.execute(cmd.Context(), j, &ro)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data-file", "d", defaultSectionsFile, "garden sections file (.yaml, .toml or .json)")
	cmd.Flags().StringVarP(&output, "output", "o", defaultGardenOutput, "output file; the extension follows each format")
	cmd.Flags().StringVar(&title, "title", "", "map title (overrides the title in the data file)")
	ro.addFlags(cmd)

	return cmd
}
