package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/grid"
	"github.com/nconsulting/timecard/internal/workflow"
)

type gridMode int

const (
	modeNav gridMode = iota
	modeHours
	modeNote
)

// opDoneMsg reports the outcome of a save or submit.
type opDoneMsg struct {
	action string
	err    error
}

type draftSavedMsg struct{ err error }

// gridModel is the interactive month editor. Navigation works on the active
// week; edits go through the workflow session so every status and policy
// rule applies exactly as on save.
type gridModel struct {
	app  *App
	sess *workflow.Session

	week int
	row  int
	day  int

	mode      gridMode
	hoursIn   textinput.Model
	leaveIn   textinput.Model
	commentIn textinput.Model
	noteFocus int

	status   string
	errText  string
	quitting bool
}

func newGridModel(app *App, sess *workflow.Session, restoredDraft bool) gridModel {
	hours := textinput.New()
	hours.Placeholder = "8"
	hours.CharLimit = 5
	hours.Width = 6

	leave := textinput.New()
	leave.Placeholder = "Annual Leave"
	leave.CharLimit = 40
	leave.Width = 24

	comment := textinput.New()
	comment.Placeholder = "reason"
	comment.CharLimit = 120
	comment.Width = 40

	m := gridModel{
		app:       app,
		sess:      sess,
		hoursIn:   hours,
		leaveIn:   leave,
		commentIn: comment,
	}
	if restoredDraft {
		m.status = "Restored unsaved draft."
	}
	m.clampCursor()
	return m
}

func (m gridModel) Init() tea.Cmd { return nil }

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.status = msg.action + " succeeded."
		m.clampCursor()
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			m.errText = "draft not saved: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeHours:
			return m.updateHoursEntry(msg)
		case modeNote:
			return m.updateNoteEntry(msg)
		default:
			return m.updateNav(msg)
		}
	}
	return m, nil
}

func (m gridModel) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(m.saveDraftCmd(), tea.Quit)

	case "tab", "]", "w":
		m.week = (m.week + 1) % len(m.sess.Weeks)
		m.clampCursor()
	case "shift+tab", "W":
		m.week = (m.week - 1 + len(m.sess.Weeks)) % len(m.sess.Weeks)
		m.clampCursor()

	case "left", "h":
		if m.day > 0 {
			m.day--
		}
	case "right", "l":
		if m.day < len(m.sess.Weeks[m.week].Days)-1 {
			m.day++
		}
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(m.sess.Rows[m.week])-1 {
			m.row++
		}

	case "enter":
		if !m.cellEditable() {
			m.errText = "this cell cannot be edited"
			return m, nil
		}
		m.mode = modeHours
		m.hoursIn.SetValue("")
		m.errText = ""
		return m, m.hoursIn.Focus()

	case "c":
		if !m.cellEditable() {
			m.errText = "this cell cannot be edited"
			return m, nil
		}
		note := m.currentRow().Notes[m.day]
		m.leaveIn.SetValue(note.LeaveType)
		m.commentIn.SetValue(note.Comment)
		m.mode = modeNote
		m.noteFocus = 0
		m.errText = ""
		return m, m.leaveIn.Focus()

	case "d":
		if err := m.sess.ClearHours(m.week, m.currentRow().ID, m.day); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		return m.edited()

	case "o":
		if err := m.sess.AddRow(m.week, domain.PayCodeOvertime); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		return m.edited()

	case "x":
		if err := m.sess.RemoveRow(m.week, m.currentRow().ID); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.clampCursor()
		return m.edited()

	case "e":
		if err := m.sess.EditTimesheet(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.status = "Sheet reopened for editing."
		m.errText = ""

	case "s":
		return m, m.runOpCmd("Save", m.app.Timesheets.Save)

	case "S":
		return m, m.runOpCmd("Submit", m.app.Timesheets.Submit)
	}
	return m, nil
}

func (m gridModel) updateHoursEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNav
		m.hoursIn.Blur()
		return m, nil
	case "enter":
		v, ok, err := parseHours(m.hoursIn.Value())
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.mode = modeNav
		m.hoursIn.Blur()
		if !ok {
			if err := m.sess.ClearHours(m.week, m.currentRow().ID, m.day); err != nil {
				m.errText = err.Error()
				return m, nil
			}
		} else if err := m.sess.SetHours(m.week, m.currentRow().ID, m.day, v); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		return m.edited()
	}
	var cmd tea.Cmd
	m.hoursIn, cmd = m.hoursIn.Update(msg)
	return m, cmd
}

func (m gridModel) updateNoteEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNav
		m.leaveIn.Blur()
		m.commentIn.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.noteFocus = 1 - m.noteFocus
		if m.noteFocus == 0 {
			m.commentIn.Blur()
			return m, m.leaveIn.Focus()
		}
		m.leaveIn.Blur()
		return m, m.commentIn.Focus()
	case "enter":
		m.mode = modeNav
		m.leaveIn.Blur()
		m.commentIn.Blur()
		err := m.sess.SetNote(m.week, m.currentRow().ID, m.day, grid.Note{
			LeaveType: m.leaveIn.Value(),
			Comment:   m.commentIn.Value(),
		})
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		return m.edited()
	}
	var cmd tea.Cmd
	if m.noteFocus == 0 {
		m.leaveIn, cmd = m.leaveIn.Update(msg)
	} else {
		m.commentIn, cmd = m.commentIn.Update(msg)
	}
	return m, cmd
}

// edited records a successful grid change: clear the error line and autosave
// the draft.
func (m gridModel) edited() (tea.Model, tea.Cmd) {
	m.errText = ""
	m.status = ""
	return m, m.saveDraftCmd()
}

func (m gridModel) saveDraftCmd() tea.Cmd {
	sess := m.sess
	app := m.app
	return func() tea.Msg {
		return draftSavedMsg{err: app.Timesheets.SaveDraft(context.Background(), sess)}
	}
}

func (m gridModel) runOpCmd(action string, op func(context.Context, *workflow.Session) error) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		return opDoneMsg{action: action, err: op(context.Background(), sess)}
	}
}

func (m *gridModel) clampCursor() {
	if m.week >= len(m.sess.Weeks) {
		m.week = len(m.sess.Weeks) - 1
	}
	if m.week < 0 {
		m.week = 0
	}
	rows := m.sess.Rows[m.week]
	if m.row >= len(rows) {
		m.row = len(rows) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.day < 0 {
		m.day = 0
	}
	if m.day >= len(m.sess.Weeks[m.week].Days) {
		m.day = len(m.sess.Weeks[m.week].Days) - 1
	}
}

func (m gridModel) currentRow() *grid.Row {
	return m.sess.Rows[m.week][m.row]
}

func (m gridModel) cellEditable() bool {
	return m.cellEditableAt(m.day)
}

func (m gridModel) cellEditableAt(day int) bool {
	return m.sess.CellEditable(m.week, day) ||
		// Submitted and approved sheets accept edits too; the session
		// drops the status locally when the edit lands.
		(m.sess.UIStatus == domain.StatusSubmitted || m.sess.UIStatus == domain.StatusApproved || m.sess.UIStatus == domain.StatusRejected) && !m.sess.Locked() && m.dayOpen(day)
}

func (m gridModel) dayOpen(dayIndex int) bool {
	day := m.sess.Weeks[m.week].Days[dayIndex]
	if !day.InMonth {
		return false
	}
	if day.IsWeekend && !m.sess.AllowWeekendEdit {
		return false
	}
	return !m.sess.Holidays[day.Date.Format("2006-01-02")]
}
