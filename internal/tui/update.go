package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fastlit/internal/fasting"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		// Nothing to mutate; the view re-derives progress from a fresh now
		return m, tick()

	case tea.KeyMsg:
		if m.state == stateOnboarding || m.state == stateSettingsForm {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.state = m.nextTab()
			return m, nil
		case key.Matches(msg, m.keys.Start):
			if _, err := m.ctrl.StartFast(time.Now()); err != nil {
				if err == fasting.ErrFastInProgress {
					m.statusLine = "A fast is already in progress."
				} else {
					m.statusLine = fmt.Sprintf("Could not start fast: %v", err)
				}
			} else {
				m.statusLine = "Fast started."
			}
			return m, nil
		case key.Matches(msg, m.keys.End):
			if m.ctrl.Status() == fasting.StatusEating {
				m.statusLine = "No fast in progress."
			} else if err := m.ctrl.EndFast(time.Now()); err != nil {
				m.statusLine = fmt.Sprintf("Could not end fast: %v", err)
			} else {
				m.statusLine = "Fast ended."
			}
			return m, nil
		case key.Matches(msg, m.keys.Snooze):
			if err := m.ctrl.Snooze(); err != nil {
				m.statusLine = fmt.Sprintf("Snooze failed: %v", err)
			} else if m.ctrl.Reminders().Enabled {
				m.statusLine = fmt.Sprintf("Snoozing for %d minutes.", m.ctrl.Reminders().SnoozeMinutes)
			} else {
				m.statusLine = "Reminders are disabled."
			}
			return m, nil
		}

		if m.state == stateHistory {
			return m.updateHistory(msg)
		}
		if m.state == stateSettings && key.Matches(msg, m.keys.Edit) {
			m.form = m.newSettingsForm()
			m.state = stateSettingsForm
			return m, m.form.Init()
		}
		return m, nil
	}

	if (m.state == stateOnboarding || m.state == stateSettingsForm) && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			if m.state == stateOnboarding {
				m.completeOnboarding()
			} else {
				m.applySettings()
			}
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sessions := m.ctrl.Sessions()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.historyCursor < len(sessions)-1 {
			m.historyCursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if len(sessions) == 0 {
			break
		}
		if err := m.ctrl.DeleteSessions([]int{m.historyCursor}); err != nil {
			m.statusLine = fmt.Sprintf("Delete failed: %v", err)
			break
		}
		m.statusLine = "Entry deleted."
		if m.historyCursor >= len(m.ctrl.Sessions()) && m.historyCursor > 0 {
			m.historyCursor--
		}
	}
	return m, nil
}

func (m Model) nextTab() viewState {
	switch m.state {
	case stateStatus:
		return stateHistory
	case stateHistory:
		return stateSettings
	default:
		return stateStatus
	}
}
