package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planview/pkg/config"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/office"
)

// deriveCommand creates the derive command, which prints the office layout
// context without drawing anything.
func (c *CLI) deriveCommand() *cobra.Command {
	var (
		configPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the coordinates derived from an office config",
		Long: `Print the coordinates derived from an office config.

This is the arithmetic behind the office drawings: door opening and pocket,
window position and sill, furniture anchors, platform and HVAC heights.
Without --config the reference office is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadOffice(configPath)
			if err != nil {
				return err
			}
			ds, err := office.FromMapping(doc)
			if err != nil {
				return err
			}
			lc, err := office.Derive(ds)
			if err != nil {
				return err
			}
			if asJSON {
				return writeContextJSON(os.Stdout, lc)
			}
			printContext(lc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "office dimensions file (.yaml, .toml or .json)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the context as JSON")

	return cmd
}

func loadOffice(path string) (map[string]any, error) {
	if path == "" {
		return defaultOfficeDocument()
	}
	return config.Load(path)
}

func writeContextJSON(w io.Writer, lc office.Context) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lc)
}

func printContext(lc office.Context) {
	printKeyValue("opening", span(lc.PocketOpening))
	printKeyValue("pocket", span(lc.PocketPanel))
	printKeyValue("door y", num(lc.DoorY))
	printKeyValue("window x", num(lc.WindowX))
	printKeyValue("window sill", num(lc.WindowSill))
	printKeyValue("desk", point(lc.DeskX, lc.DeskY))
	printKeyValue("bookshelf", point(lc.BookshelfX, lc.BookshelfY))
	printKeyValue("platform x", num(lc.PlatformX))
	printKeyValue("platform stud", num(lc.PlatformStudX))
	printKeyValue("platform z", num(lc.PlatformZ))
	printKeyValue("hvac", point(lc.HVACX, lc.HVACY))
	printKeyValue("hvac face z", num(lc.HVACFaceZ))
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func span(s geom.Span) string { return fmt.Sprintf("[%s, %s]", num(s.Left), num(s.Right)) }

func point(x, y float64) string { return fmt.Sprintf("(%s, %s)", num(x), num(y)) }
