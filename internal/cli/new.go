package cli

import (
	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// newNewCmd creates the new command for starting a fresh map.
func newNewCmd() *cobra.Command {
	var (
		output     string
		content    string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a fresh mind map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m := mindmap.NewWithContent(content)
			m.ComputeLayout()

			if err := formats.WriteFile(m, output, formatName); err != nil {
				return err
			}
			logger.Debugf("Created map with root %s", m.RootID)
			printSuccess("Created %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "map.json", "output file")
	cmd.Flags().StringVar(&content, "content", mindmap.DefaultRootContent, "root node content")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format (default: by extension)")

	return cmd
}
