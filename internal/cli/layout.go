package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// newLayoutCmd creates the layout command, which computes node positions
// and either prints them or writes them back into the file.
func newLayoutCmd() *cobra.Command {
	var (
		write      bool
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Compute node positions for a mind map",
		Long: `Compute node positions for a mind map.

Positions place children to the right of their parent, siblings stacked
vertically, parents centered over their subtree. With --write the
positions are stored back into the file; only the native JSON format
carries them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := formats.ReadFile(args[0], formatName)
			if err != nil {
				return err
			}
			m.ComputeLayout()
			logger.Debugf("Laid out %d nodes", m.Len())

			if write {
				if err := formats.WriteFile(m, args[0], formatName); err != nil {
					return err
				}
				printSuccess("Updated %s", args[0])
				return nil
			}

			m.Walk(func(n *mindmap.Node, depth int) {
				fmt.Printf("%s  %s\n",
					StyleDim.Render(fmt.Sprintf("(%6.0f,%6.0f)", n.X, n.Y)),
					StyleValue.Render(n.Content))
			})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write positions back to the file")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "file format (default: by extension)")

	return cmd
}
