package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path
	format     string // output format: "svg", "png", "dot"
	formatName string // input file format override
	icons      bool   // include icon names in node labels
	selection  bool   // highlight the selected node
}

// newRenderCmd creates the render command for generating node-link
// diagrams from a map.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: "svg", icons: true}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a mind map to SVG, PNG, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVar(&opts.formatName, "from", "", "input format (default: by extension)")
	cmd.Flags().BoolVar(&opts.icons, "icons", opts.icons, "show icon names in node labels")
	cmd.Flags().BoolVar(&opts.selection, "selection", false, "highlight the selected node")

	return cmd
}

var validRenderFormats = map[string]bool{"svg": true, "png": true, "dot": true}

func validateRenderFormat(f string) error {
	if !validRenderFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
	}
	return nil
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	logger.Infof("Rendering %s", input)

	m, err := formats.ReadFile(input, opts.formatName)
	if err != nil {
		return err
	}
	m.ComputeLayout()
	logger.Debugf("Loaded map: %d nodes", m.Len())

	dot := render.ToDOT(m, render.Options{
		ShowIcons:          opts.icons,
		HighlightSelection: opts.selection,
	})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	printSuccess("Generated %s", outputPath)
	return nil
}
