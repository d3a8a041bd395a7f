// Package teatest drives bubbletea models synchronously in tests, calling
// Update directly and draining returned Cmds so no program goroutine is
// needed. Blocking Cmds such as cursor blink timers are skipped after a
// short wait.
package teatest

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds recursive Cmd draining.
const maxDepth = 64

// cmdWait separates instant Cmds (message factories, local DB writes) from
// timer-backed ones; cursor blink waits roughly half a second.
const cmdWait = 10 * time.Millisecond

// Driver feeds messages to a model and collects the resulting state.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quit is set once tea.QuitMsg comes out of a drained Cmd. The real
	// runtime intercepts that message, so the driver tracks it itself.
	Quit bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	d.drain(model.Init(), 0)
	return d
}

// Send runs one message through Update and drains whatever it returns.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	d.Model, _ = d.step(msg, 0)
}

// Press sends a named key ("enter", "esc", "tab", "shift+tab", "up",
// "down", "left", "right", "ctrl+c") or a single rune.
func (d *Driver) Press(key string) {
	d.t.Helper()
	d.Send(keyMsg(key))
}

// Type sends each rune of s as its own key event.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func (d *Driver) step(msg tea.Msg, depth int) (tea.Model, tea.Cmd) {
	d.t.Helper()
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, depth)
	return d.Model, cmd
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Fatalf("teatest: cmd drain exceeded depth %d", maxDepth)
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	// tea.Sequence yields an unexported []tea.Cmd message; unpack it by
	// reflection so sequenced Cmds (draft save then quit) still run.
	if seq, ok := sequenceCmds(msg); ok {
		for _, sub := range seq {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quit = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	d.Model, _ = d.step(msg, depth+1)
}

func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

func sequenceCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || !strings.Contains(v.Type().String(), "sequenceMsg") {
		return nil, false
	}
	cmds := make([]tea.Cmd, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if sub, ok := v.Index(i).Interface().(tea.Cmd); ok {
			cmds = append(cmds, sub)
		}
	}
	return cmds, true
}

// isBlink filters the bubbles cursor package's blink messages, whose
// unexported types chain into half-second timer Cmds.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(reflect.TypeOf(msg).String()), "blink")
}
