package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/models"
	"github.com/julianstephens/fastlit/internal/storage"
)

type viewState int

const (
	stateOnboarding viewState = iota
	stateStatus
	stateHistory
	stateSettings
	stateSettingsForm
)

// tickMsg drives the per-second repaint of derived progress and remaining
// time. The controller itself stays pure; the tick only supplies a fresh now.
type tickMsg time.Time

type Model struct {
	store *storage.Store
	ctrl  *fasting.Controller

	state         viewState
	keys          KeyMap
	help          help.Model
	progress      progress.Model
	form          *huh.Form
	historyCursor int
	statusLine    string
	quitting      bool
	width         int
	height        int
}

func NewModel(store *storage.Store, ctrl *fasting.Controller) Model {
	m := Model{
		store:    store,
		ctrl:     ctrl,
		state:    stateStatus,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	if !ctrl.Onboarded() {
		m.state = stateOnboarding
		m.form = m.newOnboardingForm()
	}

	return m
}

func (m Model) newOnboardingForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("plan").
				Title("Pick your fasting plan").
				Description("You can change this anytime in Settings.").
				Options(
					huh.NewOption("16:8 (16 fasting hours)", "16:8"),
					huh.NewOption("18:6 (18 fasting hours)", "18:6"),
					huh.NewOption("20:4 (20 fasting hours)", "20:4"),
				),
			huh.NewConfirm().
				Key("use24h").
				Title("Use 24-hour time?"),
		),
	)
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) newSettingsForm() *huh.Form {
	plan := m.ctrl.Plan()
	r := m.ctrl.Reminders()

	planTag := plan.Tag()
	options := []huh.Option[string]{
		huh.NewOption("16:8", constants.PlanTagSixteenEight),
		huh.NewOption("18:6", constants.PlanTagEighteenSix),
		huh.NewOption("20:4", constants.PlanTagTwentyFour),
	}
	if plan.Kind == models.PlanCustom {
		options = append(options, huh.NewOption(plan.DisplayName(), planTag))
	}

	enabled := r.Enabled
	startAlert := r.StartAlert
	endAlert := r.EndAlert
	preEnd := "0"
	if r.PreEndMinutes != nil {
		preEnd = strconv.Itoa(*r.PreEndMinutes)
	}
	snooze := strconv.Itoa(r.SnoozeMinutes)
	use24h := m.ctrl.TimeFormat24h()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("plan").
				Title("Fasting plan").
				Options(options...).
				Value(&planTag),
			huh.NewConfirm().
				Key("enabled").
				Title("Reminders enabled?").
				Value(&enabled),
			huh.NewConfirm().
				Key("startAlert").
				Title("Alert when a fast starts?").
				Value(&startAlert),
			huh.NewConfirm().
				Key("endAlert").
				Title("Alert at the scheduled end?").
				Value(&endAlert),
			huh.NewInput().
				Key("preEnd").
				Title("Pre-end reminder (minutes before, 0 disables)").
				Validate(validateMinutes(0, 120)).
				Value(&preEnd),
			huh.NewInput().
				Key("snooze").
				Title("Snooze delay (minutes)").
				Validate(validateMinutes(constants.MinSnoozeMinutes, constants.MaxSnoozeMinutes)).
				Value(&snooze),
			huh.NewConfirm().
				Key("use24h").
				Title("Use 24-hour time?").
				Value(&use24h),
		),
	)
}

func validateMinutes(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func (m *Model) applySettings() {
	err := m.ctrl.SetPlan(models.ParsePlanTag(m.form.GetString("plan")))

	r := m.ctrl.Reminders()
	r.Enabled = m.form.GetBool("enabled")
	r.StartAlert = m.form.GetBool("startAlert")
	r.EndAlert = m.form.GetBool("endAlert")
	if v, perr := strconv.Atoi(m.form.GetString("preEnd")); perr == nil {
		if v == 0 {
			r.PreEndMinutes = nil
		} else {
			r.PreEndMinutes = &v
		}
	}
	if v, serr := strconv.Atoi(m.form.GetString("snooze")); serr == nil {
		r.SnoozeMinutes = v
	}
	if e := m.ctrl.SetReminders(r); err == nil {
		err = e
	}
	if e := m.ctrl.SetTimeFormat24h(m.form.GetBool("use24h")); err == nil {
		err = e
	}

	m.state = stateSettings
	m.form = nil
	if err != nil {
		m.statusLine = fmt.Sprintf("Could not save settings: %v", err)
		return
	}
	m.statusLine = "Settings saved."
}

func (m *Model) completeOnboarding() {
	err := m.ctrl.SetPlan(models.ParsePlanTag(m.form.GetString("plan")))
	if e := m.ctrl.SetTimeFormat24h(m.form.GetBool("use24h")); err == nil {
		err = e
	}
	if e := m.ctrl.SetOnboarded(true); err == nil {
		err = e
	}
	m.state = stateStatus
	m.form = nil
	if err != nil {
		m.statusLine = fmt.Sprintf("Could not save settings: %v", err)
	}
}
