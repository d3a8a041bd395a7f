package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nconsulting/timecard/internal/cli/formatter"
)

var (
	styleTabActive = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	styleTab       = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	styleCursor    = lipgloss.NewStyle().Reverse(true)
	styleError     = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	styleStatus    = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
)

func (m gridModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatMonthHeader(m.sess))
	b.WriteString("\n\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")

	if notes := formatter.FormatNotes(m.sess, m.week); notes != "" {
		b.WriteString(notes)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeHours:
		b.WriteString("Hours (blank clears): " + m.hoursIn.View() + "\n")
	case modeNote:
		b.WriteString("Leave type: " + m.leaveIn.View() + "  Comment: " + m.commentIn.View() + "\n")
	default:
		b.WriteString(formatter.StyleDim.Render(
			"enter hours · c note · d clear · o overtime row · x remove row · s save · S submit · e reopen · q quit",
		) + "\n")
	}

	if m.errText != "" {
		b.WriteString(styleError.Render(m.errText) + "\n")
	} else if m.status != "" {
		b.WriteString(styleStatus.Render(m.status) + "\n")
	}
	return b.String()
}

func (m gridModel) viewTabs() string {
	tabs := make([]string, 0, len(m.sess.Weeks))
	for i, w := range m.sess.Weeks {
		label := fmt.Sprintf("W%d %s", i+1, w.Label)
		if i == m.week {
			tabs = append(tabs, styleTabActive.Render(label))
			continue
		}
		tabs = append(tabs, styleTab.Render(label))
	}
	return strings.Join(tabs, " ")
}

// viewGrid renders the active week with the cursor cell inverted.
func (m gridModel) viewGrid() string {
	week := m.sess.Weeks[m.week]

	headers := make([]string, 0, len(week.Days)+1)
	headers = append(headers, "Pay Code")
	for _, day := range week.Days {
		h := day.Date.Format("Mon 02")
		if !day.InMonth {
			h = formatter.StyleDim.Render(h)
		}
		headers = append(headers, h)
	}

	rows := make([][]string, 0, len(m.sess.Rows[m.week]))
	for ri, row := range m.sess.Rows[m.week] {
		cells := make([]string, 0, len(headers))
		cells = append(cells, string(row.PayCode))
		for di := range week.Days {
			cell := formatter.FormatHours(row.Hours[di])
			if note, ok := row.Notes[di]; ok && (note.Comment != "" || note.LeaveType != "") {
				cell += "*"
			}
			if row.Hours[di] == nil && !m.cellEditableAt(di) {
				cell = "×"
			}
			if ri == m.row && di == m.day {
				cell = styleCursor.Render(" " + cell + " ")
			}
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}

	return formatter.RenderTable(headers, rows)
}
