package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
)

// newEditCmd creates the edit command, an interactive terminal outline
// editor for a map file.
func newEditCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a mind map in the terminal",
		Long: `Edit a mind map in the terminal.

Keys:
  arrows/hjkl  move the selection (right: first child, left: parent,
               down/up: next/previous sibling)
  a            add a child node
  o            add a sibling node
  e            edit the selected node's content
  d            delete the selected node and its subtree
  i            add an icon to the selected node
  I            remove the selected node's last icon
  s            save
  q            quit (ctrl+c discards changes)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := formats.ReadFile(args[0], formatName)
			if err != nil {
				return err
			}

			model := newEditorModel(m, args[0], formatName)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			if em, ok := final.(editorModel); ok && em.saveErr != nil {
				return em.saveErr
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "file format (default: by extension)")

	return cmd
}
