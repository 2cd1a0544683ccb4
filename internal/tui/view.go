package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if (m.state == stateOnboarding || m.state == stateSettingsForm) && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case stateStatus:
		content = m.viewStatus()
	case stateHistory:
		content = m.viewHistory()
	case stateSettings:
		content = m.viewSettings()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		subtleStyle.Render(m.statusLine),
		m.help.View(m),
	)

	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		name  string
		state viewState
	}{
		{"Status", stateStatus},
		{"History", stateHistory},
		{"Settings", stateSettings},
	}

	var rendered []string
	for _, t := range tabs {
		if t.state == m.state {
			rendered = append(rendered, activeTabStyle.Render(t.name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func (m Model) viewStatus() string {
	now := time.Now()
	is24h := m.ctrl.TimeFormat24h()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Plan: %s", m.ctrl.Plan().DisplayName())) + "\n\n")

	if m.ctrl.Status() == fasting.StatusEating {
		b.WriteString("You are eating. Press s to start a fast.\n\n")
		b.WriteString(subtleStyle.Render(fmt.Sprintf("Next fast: %s", fasting.EatingRemaining)) + "\n")
		return b.String()
	}

	s := m.ctrl.Active()
	b.WriteString(fmt.Sprintf("Fasting since %s\n", utils.FormatClock(s.Start, is24h)))
	b.WriteString(fmt.Sprintf("Scheduled end %s\n\n", utils.FormatClock(s.ScheduledEnd(), is24h)))
	b.WriteString(m.progress.ViewAs(m.ctrl.Progress(now)) + "\n\n")
	b.WriteString(fmt.Sprintf("Remaining: %s\n", m.ctrl.Remaining(now)))
	return b.String()
}

func (m Model) viewHistory() string {
	sessions := m.ctrl.Sessions()
	if len(sessions) == 0 {
		return "No fasting history yet.\n"
	}

	now := time.Now()
	var b strings.Builder
	for i, s := range sessions {
		line := fmt.Sprintf("%-12s %d:%d", s.Start.Format(constants.DateFormat), s.PlanHours, 24-s.PlanHours)
		switch {
		case s.CompletedAt != nil:
			line += fmt.Sprintf("  ended after %s", utils.FormatDuration(s.CompletedAt.Sub(s.Start)))
		case s.IsActive(now):
			line += "  active"
		default:
			line += "  " + dangerStyle.Render("expired")
		}

		cursor := "  "
		if i == m.historyCursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) viewSettings() string {
	r := m.ctrl.Reminders()

	preEnd := "off"
	if r.PreEndMinutes != nil {
		preEnd = fmt.Sprintf("%d min before", *r.PreEndMinutes)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	b.WriteString(fmt.Sprintf("Plan:          %s\n", m.ctrl.Plan().DisplayName()))
	b.WriteString(fmt.Sprintf("Reminders:     %v\n", r.Enabled))
	b.WriteString(fmt.Sprintf("Start alert:   %v\n", r.StartAlert))
	b.WriteString(fmt.Sprintf("End alert:     %v\n", r.EndAlert))
	b.WriteString(fmt.Sprintf("Pre-end:       %s\n", preEnd))
	b.WriteString(fmt.Sprintf("Snooze:        %d min\n", r.SnoozeMinutes))
	b.WriteString(fmt.Sprintf("24-hour time:  %v\n", m.ctrl.TimeFormat24h()))
	b.WriteString(fmt.Sprintf("Health linked: %v %s\n", m.store.HealthLinked(), subtleStyle.Render("(placeholder)")))
	b.WriteString("\n" + subtleStyle.Render("Press enter to edit, or use: fastlit plan, fastlit reminders, fastlit settings") + "\n")
	return b.String()
}
