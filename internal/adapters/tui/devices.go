package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// updateDevices handles keys in the device-integration view.
func (m Model) updateDevices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.router.DeviceSub() {
	case domain.DeviceList:
		return m.updateDeviceList(msg)
	case domain.DeviceLiveData:
		switch msg.String() {
		case "esc", "b":
			m.router.SetDeviceSub(domain.DeviceOverview)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "b":
		return m.goBack()
	case "l", "enter":
		m.deviceCursor = 0
		m.router.SetDeviceSub(domain.DeviceList)
	case "v":
		m.router.SetDeviceSub(domain.DeviceLiveData)
	case "s":
		return m.requestSync()
	}
	return m, nil
}

func (m Model) updateDeviceList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.router.SetDeviceSub(domain.DeviceOverview)
	case "up", "k":
		if m.deviceCursor > 0 {
			m.deviceCursor--
		}
	case "down", "j":
		if m.deviceCursor < len(m.devices)-1 {
			m.deviceCursor++
		}
	case "s", "enter":
		return m.requestSync()
	}
	return m, nil
}

// requestSync kicks off a refresh on the selected device. A device
// already syncing is left alone.
func (m Model) requestSync() (tea.Model, tea.Cmd) {
	if m.deviceCursor >= len(m.devices) {
		return m, nil
	}
	d := m.devices[m.deviceCursor]
	started, err := m.syncSvc.RequestSync(context.Background(), d.ID)
	if err != nil || !started {
		return m, nil
	}
	return m, syncCmd(d.ID, m.syncSvc.Latency())
}

func (m Model) viewDevices() string {
	switch m.router.DeviceSub() {
	case domain.DeviceList:
		return m.viewDeviceList()
	case domain.DeviceLiveData:
		return m.viewLiveData()
	}

	help := m.helpStyle()
	accent := m.accentStyle()

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewDevices)))
	sections = append(sections, help.Render("Connect your wearable to power the dashboard."))
	sections = append(sections, "")

	sections = append(sections, accent.Render("Supported devices"))
	for _, t := range catalog.SupportedDevices() {
		sections = append(sections, help.Render("  "+m.theme.IconWatch+" "+domain.GetDeviceTypeLabel(t)))
	}
	sections = append(sections, "")

	for _, d := range m.devices {
		sections = append(sections, m.deviceLine(d, false))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[l]ist devices  [v] live data  [s]ync  [esc] dashboard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewDeviceList() string {
	help := m.helpStyle()

	var sections []string
	sections = append(sections, m.titleLine("Connected Devices"))
	sections = append(sections, "")

	for i, d := range m.devices {
		sections = append(sections, m.deviceLine(d, i == m.deviceCursor))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("↑/↓ select  [s]ync now  [esc] back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// deviceLine renders one device row with its sync status and battery.
func (m Model) deviceLine(d *domain.DeviceRecord, selected bool) string {
	help := m.helpStyle()
	accent := m.accentStyle()
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SyncStatusColor(string(d.Status))))

	conn := "disconnected"
	if d.Connected {
		conn = "connected"
	}
	label := fmt.Sprintf("%s %-22s %s  %3d%% battery  %s",
		m.theme.IconWatch, d.Name, conn, d.BatteryLevel, domain.FormatTimeSince(d.LastSyncAt, m.now))

	marker := "  "
	if selected {
		marker = accent.Render("▸ ")
	}
	return marker + help.Render(label) + "  " + statusStyle.Render(domain.GetSyncStatusLabel(d.Status))
}

func (m Model) viewLiveData() string {
	help := m.helpStyle()
	value := m.valueStyle()

	var sections []string
	sections = append(sections, m.titleLine("Live Data"))

	if s := m.snapshot; s != nil {
		sections = append(sections, value.Render(fmt.Sprintf("%s %d bpm", m.theme.IconHeart, s.CurrentHeartRate())))
		sections = append(sections, help.Render("Recent readings: "+sparkline(s.HeartRateSeries)))
		sections = append(sections, "")
		sections = append(sections, value.Render(fmt.Sprintf("Steps %d   Calories %d   Active %d min",
			s.Steps, s.CaloriesBurned, s.ActiveMinutes)))
		sections = append(sections, value.Render(fmt.Sprintf("Sleep %.1fh (score %d)   HRV %d ms   Recovery %d%%",
			s.SleepHours, s.SleepScore, s.HRV, s.RecoveryScore)))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[esc] back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// sparkline renders an integer series as unicode block bars scaled to
// the series min/max.
func sparkline(series []int) string {
	if len(series) == 0 {
		return ""
	}
	bars := []rune("▁▂▃▄▅▆▇█")
	min, max := series[0], series[0]
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	var b strings.Builder
	for _, v := range series {
		idx := 0
		if max > min {
			idx = (v - min) * (len(bars) - 1) / (max - min)
		}
		b.WriteRune(bars[idx])
	}
	return b.String()
}
