// Package tui implements the briefdeck terminal dashboard: the meetings
// pane, the saved-formats pane, and the format wizard modal.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"briefdeck/internal/channel"
	"briefdeck/internal/config"
	"briefdeck/internal/database/repository"
	"briefdeck/internal/format"
	"briefdeck/internal/meeting"
	"briefdeck/internal/recipient"
)

// Repos groups the persistence collaborators the TUI reads directly.
// The format store carries its own repo.
type Repos struct {
	Meetings *repository.MeetingRepo
}

// App ties together views.
type App struct {
	ctx        context.Context
	cfg        config.Config
	log        *zap.Logger
	registry   *channel.Registry
	catalog    *recipient.Catalog
	store      *format.Store
	repos      Repos
	saveConfig func(config.Config) error

	state         appState
	meetings      []meeting.Meeting
	meetingCursor int
	formatCursor  int
	sendCursor    int
	deletingID    string
	status        string
	tz            *time.Location
	dateFormat    string

	settingsEditing settingsField
	settingsInput   string

	modal modalState
	wiz   *wizardSession
}

type appState string

const (
	viewMeetings appState = "meetings"
	viewFormats  appState = "formats"
	viewSettings appState = "settings"
)

type modalState string

const (
	modalNone          modalState = ""
	modalWizard        modalState = "wizard"
	modalConfirmDelete modalState = "confirmDelete"
	modalSendPicker    modalState = "sendPicker"
)

// New builds the app model. The store must already be hydrated.
func New(ctx context.Context, cfg config.Config, log *zap.Logger, registry *channel.Registry, catalog *recipient.Catalog, store *format.Store, repos Repos, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	dateFormat := cfg.UI.DateFormat
	if dateFormat == "" {
		dateFormat = "02 Jan 15:04"
	}
	return &App{
		ctx:        ctx,
		cfg:        cfg,
		log:        log,
		registry:   registry,
		catalog:    catalog,
		store:      store,
		repos:      repos,
		saveConfig: config.Save,
		state:      viewMeetings,
		tz:         tz,
		dateFormat: dateFormat,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadMeetings()
}

func (a *App) loadMeetings() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Meetings == nil {
			return meetingsMsg(meeting.SampleMeetings())
		}
		list, err := a.repos.Meetings.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return meetingsMsg(list)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch a.modal {
		case modalWizard:
			return a.handleWizardKey(m)
		case modalConfirmDelete:
			return a.handleConfirmDeleteKey(m)
		case modalSendPicker:
			return a.handleSendPickerKey(m)
		}
		return a.handleViewKey(m)
	case meetingsMsg:
		a.meetings = []meeting.Meeting(m)
		if a.meetingCursor >= len(a.meetings) {
			a.meetingCursor = 0
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.log.Error("ui error", zap.Error(m.error))
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleViewKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == viewSettings {
		if a.settingsEditing != settingsNone {
			return a.handleSettingsInputKey(m)
		}
		if model, cmd, handled := a.handleSettingsKey(m); handled {
			return model, cmd
		}
	}
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "m":
		a.state = viewMeetings
		a.status = ""
	case "f":
		a.state = viewFormats
		a.status = ""
	case "p":
		a.state = viewSettings
		a.status = ""
	case "up", "k":
		if a.state == viewMeetings && a.meetingCursor > 0 {
			a.meetingCursor--
		}
		if a.state == viewFormats && a.formatCursor > 0 {
			a.formatCursor--
		}
	case "down", "j":
		if a.state == viewMeetings && a.meetingCursor < len(a.meetings)-1 {
			a.meetingCursor++
		}
		if a.state == viewFormats && a.formatCursor < len(a.store.List())-1 {
			a.formatCursor++
		}
	case "s":
		if a.state == viewMeetings && len(a.meetings) > 0 {
			if len(a.store.List()) == 0 {
				a.status = "no saved formats - create one first [f] then [n]"
				return a, nil
			}
			a.modal = modalSendPicker
			a.sendCursor = 0
		}
	case "n":
		if a.state == viewFormats {
			a.openWizard(nil)
		}
	case "enter", "e":
		if a.state == viewFormats {
			formats := a.store.List()
			if len(formats) == 0 {
				a.status = "no formats yet - press [n] to create one"
				return a, nil
			}
			f := formats[a.formatCursor]
			a.openWizard(&f)
		}
	case "d", "backspace", "delete":
		if a.state == viewFormats {
			formats := a.store.List()
			if len(formats) == 0 {
				return a, nil
			}
			a.deletingID = formats[a.formatCursor].ID
			a.modal = modalConfirmDelete
		}
	}
	return a, nil
}

func (a *App) handleConfirmDeleteKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "y", "Y":
		a.modal = modalNone
		id := a.deletingID
		a.deletingID = ""
		if err := a.store.Delete(a.ctx, id); err != nil {
			a.log.Error("delete format", zap.String("id", id), zap.Error(err))
			a.status = "error: " + err.Error()
			return a, nil
		}
		if a.formatCursor >= len(a.store.List()) && a.formatCursor > 0 {
			a.formatCursor--
		}
		a.status = "format deleted"
	case "n", "N", "esc":
		a.modal = modalNone
		a.deletingID = ""
	}
	return a, nil
}

func (a *App) handleSendPickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	formats := a.store.List()
	switch m.String() {
	case "esc":
		a.modal = modalNone
	case "up", "k":
		if a.sendCursor > 0 {
			a.sendCursor--
		}
	case "down", "j":
		if a.sendCursor < len(formats)-1 {
			a.sendCursor++
		}
	case "enter":
		a.modal = modalNone
		if len(a.meetings) == 0 || len(formats) == 0 {
			return a, nil
		}
		mt := a.meetings[a.meetingCursor]
		f := formats[a.sendCursor]
		// the row shows queued until the send command reports back
		a.meetings[a.meetingCursor].SendStatus = meeting.StatusQueued
		return a, a.sendSummaryCmd(mt, f)
	}
	return a, nil
}

func (a *App) sendSummaryCmd(mt meeting.Meeting, f format.CommunicationFormat) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if a.repos.Meetings != nil {
				if err := a.repos.Meetings.SetSendStatus(a.ctx, mt.ID, meeting.StatusSent, f.ID); err != nil {
					return errMsg{err}
				}
			}
			a.log.Info("summary sent",
				zap.String("meeting", mt.ID),
				zap.String("format", f.ID),
				zap.Strings("channels", f.Channels))
			return statusMsg("summary sent with \"" + f.Name + "\"")
		},
		a.loadMeetings(),
	)
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewFormats:
		body = a.renderFormats()
	case viewSettings:
		body = a.renderSettings()
	default:
		body = a.renderMeetings()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

// messages
type meetingsMsg []meeting.Meeting

type statusMsg string

type errMsg struct{ error }
