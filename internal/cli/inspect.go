package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// newInspectCmd creates the inspect command for printing a map as a text
// outline with statistics.
func newInspectCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a mind map as a text outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := formats.ReadFile(args[0], formatName)
			if err != nil {
				return err
			}
			printOutline(m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "input format (default: by extension)")

	return cmd
}

func printOutline(m *mindmap.Map) {
	var maxDepth, iconCount int

	m.Walk(func(n *mindmap.Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
		iconCount += len(n.Icons)

		line := strings.Repeat("  ", depth)
		if depth == 0 {
			line += StyleTitle.Render(n.Content)
		} else {
			line += StyleDim.Render("- ") + StyleValue.Render(n.Content)
		}
		if len(n.Icons) > 0 {
			line += " " + StyleHighlight.Render("["+strings.Join(n.Icons, " ")+"]")
		}
		fmt.Println(line)
	})

	fmt.Println()
	printStats(m.Len(), maxDepth, iconCount)
}
