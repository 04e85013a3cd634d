// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/config"
	"github.com/vitalcoach/vital-cli/internal/domain"
	"github.com/vitalcoach/vital-cli/internal/services"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// syncDoneMsg reports that a device refresh finished its simulated
// latency and should resolve.
type syncDoneMsg struct {
	deviceID string
}

// overlayKind enumerates the coach overlays that sit on top of the
// active view. Exactly one overlay is visible at a time.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayCoachInput
	overlayListening
	overlayCoachReply
)

// Model represents the TUI state.
type Model struct {
	router   *domain.Router
	wizard   *domain.IntakeWizard
	workouts *services.WorkoutService
	syncSvc  *services.SyncService
	profiles *services.ProfileService

	theme    config.ThemeConfig
	goals    config.GoalsConfig
	progress progress.Model
	width    int
	height   int

	// Dashboard data fetched from the provider.
	snapshot  *domain.HealthSnapshot
	readiness domain.ReadinessTier
	devices   []*domain.DeviceRecord
	now       time.Time

	// Welcome screen shown before intake on first run.
	showWelcome   bool
	welcomeCursor int

	intake intakeState

	planCursor     int
	exerciseCursor int
	workoutDone    bool

	recipeCursor int
	filter       filterState

	deviceCursor int

	profileCursor int
	editForm      *editState

	report *domain.WorkoutReport

	overlay    overlayKind
	coach      coachState
	statusLine string

	onWorkoutComplete func(planName string)
	onSyncComplete    func(deviceName string)
}

// NewModel creates a new TUI model. firstRun controls whether the
// welcome screen precedes intake.
func NewModel(workouts *services.WorkoutService, syncSvc *services.SyncService, profiles *services.ProfileService, theme *config.ThemeConfig, goals config.GoalsConfig, firstRun bool) Model {
	m := Model{
		workouts:    workouts,
		syncSvc:     syncSvc,
		profiles:    profiles,
		theme:       resolveTheme(theme),
		goals:       goals,
		progress:    progress.New(progress.WithDefaultGradient()),
		showWelcome: firstRun,
		now:         time.Now(),
	}
	m.intake = newIntakeState()
	m.filter = newFilterState()
	m.coach = newCoachState()

	if profiles.HasProfile() {
		m.router = domain.NewRouter()
		m.showWelcome = false
	} else {
		m.wizard = domain.NewIntakeWizard()
	}

	ctx := context.Background()
	m.snapshot, _ = syncSvc.Snapshot(ctx)
	m.readiness, _ = syncSvc.Readiness(ctx)
	m.devices, _ = syncSvc.Devices(ctx)
	return m
}

// SetCompletionCallbacks wires the notification hooks fired when a
// workout finishes and when a device refresh lands.
func (m *Model) SetCompletionCallbacks(onWorkout, onSync func(string)) {
	m.onWorkoutComplete = onWorkout
	m.onSyncComplete = onSync
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// syncCmd waits out the simulated refresh latency, then resolves.
func syncCmd(deviceID string, latency time.Duration) tea.Cmd {
	return tea.Tick(latency, func(time.Time) tea.Msg {
		return syncDoneMsg{deviceID: deviceID}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case syncDoneMsg:
		ctx := context.Background()
		_ = m.syncSvc.ResolveSync(ctx, msg.deviceID)
		if m.onSyncComplete != nil {
			for _, d := range m.devices {
				if d.ID == msg.deviceID {
					m.onSyncComplete(d.Name)
				}
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showWelcome {
			return m.updateWelcome(msg)
		}
		if m.wizard != nil && !m.wizard.Finished() {
			return m.updateIntake(msg)
		}
		if m.overlay != overlayNone {
			return m.updateCoachOverlay(msg)
		}
		return m.updateView(msg)
	}

	var cmd tea.Cmd
	newProgress, cmd := m.progress.Update(msg)
	if p, ok := newProgress.(progress.Model); ok {
		m.progress = p
	}
	return m, cmd
}

// updateView routes a key press to the active view's handler.
func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusLine = ""

	switch m.router.View() {
	case domain.ViewDashboard:
		return m.updateDashboard(msg)
	case domain.ViewWorkout:
		return m.updateWorkout(msg)
	case domain.ViewNutrition:
		return m.updateNutrition(msg)
	case domain.ViewDevices:
		return m.updateDevices(msg)
	case domain.ViewProfile:
		return m.updateProfile(msg)
	case domain.ViewReport:
		return m.updateReport(msg)
	}
	return m, nil
}

// goBack leaves the current view for the dashboard, discarding any
// view-local work in progress.
func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.router.View() == domain.ViewWorkout {
		m.workouts.DiscardSession()
		m.workoutDone = false
	}
	m.router.Back()
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showWelcome {
		return m.viewWelcome()
	}
	if m.wizard != nil && !m.wizard.Finished() {
		return m.viewIntake()
	}

	var body string
	switch m.router.View() {
	case domain.ViewDashboard:
		body = m.viewDashboard()
	case domain.ViewWorkout:
		body = m.viewWorkout()
	case domain.ViewNutrition:
		body = m.viewNutrition()
	case domain.ViewDevices:
		body = m.viewDevices()
	case domain.ViewProfile:
		body = m.viewProfile()
	case domain.ViewReport:
		body = m.viewReport()
	}

	if m.overlay != overlayNone {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.viewCoachOverlay())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// titleStyle renders the heading for the active view.
func (m Model) titleLine(title string) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	return style.Render(fmt.Sprintf("%s %s", m.theme.IconApp, title))
}

func (m Model) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
}

func (m Model) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent))
}

func (m Model) valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorValue))
}

// formatElapsed formats a duration as MM:SS.
func formatElapsed(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
