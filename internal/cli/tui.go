package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// Editor styles
var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	editIconStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// editorMode is the input mode of the editor.
type editorMode int

const (
	modeNavigate editorMode = iota // keys move the selection
	modeContent                    // text input edits node content
	modeIcon                       // text input names an icon to add
)

// pendingEdit says what to do with the text input's value on enter.
type pendingEdit int

const (
	editSetContent pendingEdit = iota // replace selected node's content
	editAddChild                      // add child with the typed content
	editAddSibling                    // add sibling with the typed content
)

// editorModel is the bubbletea model for the outline editor.
type editorModel struct {
	m          *mindmap.Map
	path       string
	formatName string

	mode    editorMode
	pending pendingEdit
	input   textinput.Model

	dirty   bool
	status  string
	saveErr error
}

func newEditorModel(m *mindmap.Map, path, formatName string) editorModel {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 50

	return editorModel{
		m:          m,
		path:       path,
		formatName: formatName,
		input:      input,
	}
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return em, nil
	}

	if em.mode != modeNavigate {
		return em.updateInput(keyMsg)
	}
	return em.updateNavigate(keyMsg)
}

func (em editorModel) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return em, tea.Quit
	case "q":
		if em.dirty {
			em.saveErr = em.save()
		}
		return em, tea.Quit
	case "s":
		em.saveErr = em.save()
		if em.saveErr == nil {
			em.dirty = false
			em.status = "saved"
		}
		return em, nil

	case "up", "k":
		em.m.Navigate(mindmap.Up)
	case "down", "j":
		em.m.Navigate(mindmap.Down)
	case "left", "h":
		em.m.Navigate(mindmap.Left)
	case "right", "l":
		em.m.Navigate(mindmap.Right)

	case "a":
		return em.startInput(editAddChild, ""), textinput.Blink
	case "o":
		if em.m.SelectedID == em.m.RootID {
			em.status = "root has no siblings"
			return em, nil
		}
		return em.startInput(editAddSibling, ""), textinput.Blink
	case "e":
		return em.startInput(editSetContent, em.m.Selected().Content), textinput.Blink

	case "d":
		if err := em.m.Remove(em.m.SelectedID); err != nil {
			em.status = err.Error()
		} else {
			em.dirty = true
			em.status = "deleted"
		}
	case "i":
		em.mode = modeIcon
		em.input.SetValue("")
		em.input.Focus()
		return em, textinput.Blink
	case "I":
		if err := em.m.RemoveLastIcon(em.m.SelectedID); err == nil {
			em.dirty = true
		}
	}
	return em, nil
}

func (em editorModel) startInput(pending pendingEdit, value string) editorModel {
	em.mode = modeContent
	em.pending = pending
	em.input.SetValue(value)
	em.input.CursorEnd()
	em.input.Focus()
	return em
}

func (em editorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		em.mode = modeNavigate
		em.input.Blur()
		return em, nil
	case "enter":
		em.apply(strings.TrimSpace(em.input.Value()))
		em.mode = modeNavigate
		em.input.Blur()
		return em, nil
	}

	var cmd tea.Cmd
	em.input, cmd = em.input.Update(msg)
	return em, cmd
}

// apply commits the text input's value according to the current mode.
func (em *editorModel) apply(value string) {
	if value == "" {
		return
	}

	var err error
	switch {
	case em.mode == modeIcon:
		err = em.m.AddIcon(em.m.SelectedID, value)
	case em.pending == editSetContent:
		err = em.m.SetContent(em.m.SelectedID, value)
	case em.pending == editAddChild:
		var id string
		if id, err = em.m.AddChild(em.m.SelectedID, value); err == nil {
			err = em.m.Select(id)
		}
	case em.pending == editAddSibling:
		var id string
		if id, err = em.m.AddSibling(em.m.SelectedID, value); err == nil {
			err = em.m.Select(id)
		}
	}

	if err != nil {
		em.status = err.Error()
		return
	}
	em.dirty = true
	em.status = ""
}

func (em editorModel) save() error {
	em.m.ComputeLayout()
	return formats.WriteFile(em.m, em.path, em.formatName)
}

func (em editorModel) View() string {
	var b strings.Builder

	title := em.path
	if em.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(editDimStyle.Render("hjkl navigate  a child  o sibling  e edit  d delete  i/I icons  s save  q quit"))
	b.WriteString("\n\n")

	em.m.Walk(func(n *mindmap.Node, depth int) {
		line := strings.Repeat("  ", depth)
		cursor := "  "
		if n.ID == em.m.SelectedID {
			cursor = "▸ "
		}
		line += cursor + n.Content
		if len(n.Icons) > 0 {
			line += " " + editIconStyle.Render("["+strings.Join(n.Icons, " ")+"]")
		}

		if n.ID == em.m.SelectedID {
			b.WriteString(editSelectedStyle.Render(line))
		} else {
			b.WriteString(editNormalStyle.Render(line))
		}
		b.WriteString("\n")
	})

	b.WriteString("\n")
	switch em.mode {
	case modeContent:
		label := "content"
		if em.pending == editAddChild {
			label = "new child"
		} else if em.pending == editAddSibling {
			label = "new sibling"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", editDimStyle.Render(label+":"), em.input.View()))
	case modeIcon:
		b.WriteString(fmt.Sprintf("%s %s\n", editDimStyle.Render("icon:"), em.input.View()))
	default:
		if em.status != "" {
			b.WriteString(editDimStyle.Render(em.status) + "\n")
		}
	}

	return b.String()
}
