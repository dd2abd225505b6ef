package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg int

// counter bumps on every ping and pings itself until it reaches limit.
type counter struct {
	n, limit int
}

func (c counter) Init() tea.Cmd {
	return tea.Batch(ping(1), ping(1))
}

func ping(n int) tea.Cmd {
	return func() tea.Msg { return pingMsg(n) }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.n += int(msg)
		if c.n < c.limit {
			return c, ping(1)
		}
	case tea.KeyMsg:
		if msg.String() == "q" {
			return c, tea.Quit
		}
		if msg.Type == tea.KeyUp {
			c.n += 10
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainsBatchesAndChains(t *testing.T) {
	d := New(t, counter{limit: 5})
	assert.Equal(t, 6, d.Model.(counter).n, "each batched ping chains until the limit")
}

func TestDriver_PressAndQuit(t *testing.T) {
	d := New(t, counter{})
	d.Press("up")
	assert.Equal(t, 12, d.Model.(counter).n)

	d.Press("q", "up")
	assert.True(t, d.Quitting)
	assert.Equal(t, 12, d.Model.(counter).n, "sends after quit are ignored")
}

func TestKeyMsg(t *testing.T) {
	assert.Equal(t, "ctrl+c", KeyMsg("ctrl+c").String())
	assert.Equal(t, "j", KeyMsg("j").String())
	assert.Equal(t, tea.KeyEsc, KeyMsg("esc").Type)
}
