package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// coachState backs the ask-the-coach overlay.
type coachState struct {
	input textinput.Model
	reply string
}

func newCoachState() coachState {
	ti := textinput.New()
	ti.Placeholder = "Ask your coach anything"
	ti.CharLimit = 120
	ti.Width = 50
	return coachState{input: ti}
}

// updateCoachOverlay handles keys while a coach overlay is open.
func (m Model) updateCoachOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayCoachInput:
		switch msg.String() {
		case "esc":
			m.overlay = overlayNone
			m.coach.input.Blur()
			return m, nil
		case "enter":
			question := m.coach.input.Value()
			m.coach.input.Blur()
			if strings.TrimSpace(question) == "" {
				m.overlay = overlayNone
				return m, nil
			}
			m.coach.reply = coachReplyFor(question)
			m.overlay = overlayCoachReply
			return m, nil
		}
		var cmd tea.Cmd
		m.coach.input, cmd = m.coach.input.Update(msg)
		return m, cmd

	case overlayListening:
		if msg.String() == "esc" {
			m.overlay = overlayNone
			return m, nil
		}
		m.coach.reply = coachReplyFor("how am I doing")
		m.overlay = overlayCoachReply
		return m, nil

	case overlayCoachReply:
		m.overlay = overlayNone
		return m, nil
	}
	return m, nil
}

// CoachReply produces the coaching answer for a question, for callers
// outside the dashboard loop.
func CoachReply(question string) string {
	return coachReplyFor(question)
}

// coachReplyFor produces the canned coaching answer for a question.
// Responses key off the topic words the dashboard coaches on.
func coachReplyFor(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "sleep"):
		return "You slept 7.5 hours with a score of 85 — right in the optimal range. Keep your wind-down routine consistent."
	case strings.Contains(q, "workout") || strings.Contains(q, "train"):
		return "Your recovery score of 78% says you're ready for high-intensity work. Upper Body Strength is today's pick."
	case strings.Contains(q, "eat") || strings.Contains(q, "nutrition") || strings.Contains(q, "food"):
		return "You're at 1850 of 2200 calories with protein slightly under target. A Greek yogurt parfait would close the gap."
	case strings.Contains(q, "steps"):
		return "8432 steps so far — about 84% of your daily goal. A short evening walk gets you there."
	default:
		return "Your readiness is High today: solid sleep, good HRV, and strong recovery. It's a great day to push."
	}
}

func (m Model) viewCoachOverlay() string {
	help := m.helpStyle()
	accent := m.accentStyle()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorAccent)).
		Padding(0, 1)

	switch m.overlay {
	case overlayCoachInput:
		return box.Render(lipgloss.JoinVertical(lipgloss.Left,
			accent.Render("Ask your coach"),
			m.coach.input.View(),
			help.Render("enter ask · esc cancel")))
	case overlayListening:
		return box.Render(lipgloss.JoinVertical(lipgloss.Left,
			accent.Render("Listening..."),
			help.Render("speak, then press any key · esc cancel")))
	case overlayCoachReply:
		return box.Render(lipgloss.JoinVertical(lipgloss.Left,
			accent.Render("Coach"),
			m.coach.reply,
			help.Render("any key to dismiss")))
	}
	return ""
}
