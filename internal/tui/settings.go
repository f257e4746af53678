package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// settingsField identifies which config value the settings pane is editing.
type settingsField int

const (
	settingsNone settingsField = iota
	settingsDateFormat
	settingsTimezone
	settingsLogPath
)

func settingsLabel(f settingsField) string {
	switch f {
	case settingsDateFormat:
		return "Date format:"
	case settingsTimezone:
		return "Timezone:"
	case settingsLogPath:
		return "Log file:"
	}
	return ""
}

// handleSettingsKey starts an edit on the settings pane. The bool reports
// whether the key was consumed; unhandled keys fall through to the shared
// view bindings.
func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.String() {
	case "d":
		a.settingsEditing = settingsDateFormat
		a.settingsInput = a.dateFormat
	case "t":
		a.settingsEditing = settingsTimezone
		a.settingsInput = a.cfg.UI.Timezone
	case "l":
		a.settingsEditing = settingsLogPath
		a.settingsInput = a.cfg.Log.Path
	default:
		return nil, nil, false
	}
	a.status = ""
	return a, nil, true
}

// handleSettingsInputKey edits the active buffer. Enter commits and writes
// the config file; esc abandons the edit and leaves the config untouched.
func (a *App) handleSettingsInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.settingsEditing = settingsNone
		a.settingsInput = ""
	case tea.KeyEnter:
		a.commitSettingsInput()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.settingsInput) > 0 {
			a.settingsInput = a.settingsInput[:len(a.settingsInput)-1]
		}
	case tea.KeySpace:
		a.settingsInput += " "
	case tea.KeyRunes:
		a.settingsInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) commitSettingsInput() {
	in := strings.TrimSpace(a.settingsInput)
	cfg := a.cfg
	var tz *time.Location
	switch a.settingsEditing {
	case settingsDateFormat:
		if in == "" {
			in = "02 Jan 15:04"
		}
		cfg.UI.DateFormat = in
	case settingsTimezone:
		if in == "" {
			in = "Local"
		}
		loc, err := loadLocation(in)
		if err != nil {
			a.status = "unknown timezone: " + in
			return
		}
		cfg.UI.Timezone = in
		tz = loc
	case settingsLogPath:
		cfg.Log.Path = in
	}

	if err := a.saveConfig(cfg); err != nil {
		a.log.Error("save config", zap.Error(err))
		a.status = "error: " + err.Error()
		return
	}
	a.cfg = cfg
	if cfg.UI.DateFormat != "" {
		a.dateFormat = cfg.UI.DateFormat
	}
	if tz != nil {
		a.tz = tz
	}
	a.settingsEditing = settingsNone
	a.settingsInput = ""
	a.status = "settings saved"
	a.log.Info("settings saved",
		zap.String("date_format", cfg.UI.DateFormat),
		zap.String("timezone", cfg.UI.Timezone),
		zap.String("log_path", cfg.Log.Path))
}

func loadLocation(name string) (*time.Location, error) {
	if name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
