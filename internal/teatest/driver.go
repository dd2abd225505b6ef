// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs every returned Cmd inline,
// feeding the resulting messages back until the model goes quiet. Models
// under test must only return Cmds that finish on their own.
package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained messages one Send may produce.
const MaxDrainDepth = 100

// Driver holds the current model and whether it asked to quit.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd yields tea.QuitMsg. Later sends are ignored.
	Quitting bool
}

// New runs model.Init and drains it.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(model.Init())
	return d
}

// Send passes msg to Update and drains the result.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd)
}

// Press sends one key per argument. Names like "up", "esc" and "ctrl+c"
// become special keys; anything else is typed as runes.
func (d *Driver) Press(keys ...string) {
	d.T.Helper()
	for _, k := range keys {
		d.Send(KeyMsg(k))
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// KeyMsg builds the key message bubbletea would deliver for k.
func KeyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

var namedKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
}

func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps >= MaxDrainDepth {
			d.T.Fatalf("teatest: model still producing messages after %d steps", MaxDrainDepth)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.Quitting = true
			return
		default:
			var more tea.Cmd
			d.Model, more = d.Model.Update(msg)
			queue = append(queue, more)
		}
	}
}
