package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"briefdeck/internal/format"
)

// wizardSession holds the UI-side state of one wizard run: cursors and
// edit buffers. The draft itself lives in the format.Wizard, which owns
// it for the whole session.
type wizardSession struct {
	wiz             *format.Wizard
	channelCursor   int // step 1, over the registry catalog
	activeChannel   int // steps 2/3, index into draft.Channels
	groupCursor     int // step 2, group within the active channel
	recipientCursor int // step 2, over the filtered catalog
	search          string
	input           string
	editing         editTarget
}

type editTarget int

const (
	editNone editTarget = iota
	editName
	editDescription
	editTag
	editStyle
	editSearch
)

// openWizard starts a wizard session; a non-nil seed opens in edit mode.
func (a *App) openWizard(seed *format.CommunicationFormat) {
	if seed != nil {
		a.wiz = &wizardSession{wiz: format.EditWizard(*seed)}
		a.log.Info("wizard opened", zap.String("editing", seed.ID))
	} else {
		a.wiz = &wizardSession{wiz: format.NewWizard()}
		a.log.Info("wizard opened")
	}
	a.modal = modalWizard
	a.status = ""
}

// closeWizard ends the session, discarding its draft.
func (a *App) closeWizard() {
	a.wiz = nil
	a.modal = modalNone
}

// activeChannelID returns the channel currently tabbed in steps 2/3.
func (s *wizardSession) activeChannelID() string {
	d := s.wiz.Draft()
	if len(d.Channels) == 0 {
		return ""
	}
	if s.activeChannel >= len(d.Channels) {
		s.activeChannel = 0
	}
	return d.Channels[s.activeChannel]
}

// clampCursors keeps cursors valid after draft mutations.
func (s *wizardSession) clampCursors() {
	d := s.wiz.Draft()
	if s.activeChannel >= len(d.Channels) {
		s.activeChannel = 0
	}
	ch := s.activeChannelID()
	if groups := d.GroupsByChannel[ch]; s.groupCursor >= len(groups) {
		s.groupCursor = 0
	}
}

func (a *App) handleWizardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.wiz
	if s == nil {
		a.modal = modalNone
		return a, nil
	}
	if s.editing != editNone {
		return a.handleWizardInputKey(m)
	}

	// session-level keys, valid on every step
	switch m.String() {
	case "esc":
		a.closeWizard()
		a.status = "wizard cancelled"
		a.log.Info("wizard cancelled")
		return a, nil
	case "left", "ctrl+b":
		if s.wiz.Back() {
			s.clampCursors()
		}
		return a, nil
	case "right", "ctrl+n":
		if s.wiz.Next() {
			s.clampCursors()
		}
		return a, nil
	}

	switch s.wiz.Step() {
	case format.StepSelectChannels:
		return a.handleWizardChannelsKey(m)
	case format.StepDefineRecipients:
		return a.handleWizardRecipientsKey(m)
	case format.StepDefineMessageStyle:
		return a.handleWizardStyleKey(m)
	}
	return a, nil
}

func (a *App) handleWizardChannelsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.wiz
	catalog := a.registry.List()
	switch m.String() {
	case "up", "k":
		if s.channelCursor > 0 {
			s.channelCursor--
		}
	case "down", "j":
		if s.channelCursor < len(catalog)-1 {
			s.channelCursor++
		}
	case " ", "enter":
		c := catalog[s.channelCursor]
		if !a.registry.Selectable(c.ID) {
			a.status = c.Name + " is coming soon"
			return a, nil
		}
		s.wiz.Draft().ToggleChannel(c.ID)
		s.clampCursors()
		a.status = ""
	}
	return a, nil
}

func (a *App) handleWizardRecipientsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.wiz
	d := s.wiz.Draft()
	ch := s.activeChannelID()
	visible := a.catalog.Search(s.search)
	switch m.String() {
	case "tab":
		if len(d.Channels) > 0 {
			s.activeChannel = (s.activeChannel + 1) % len(d.Channels)
			s.groupCursor = 0
		}
	case "up", "k":
		if s.recipientCursor > 0 {
			s.recipientCursor--
		}
	case "down", "j":
		if s.recipientCursor < len(visible)-1 {
			s.recipientCursor++
		}
	case " ", "enter":
		if ch == "" || len(visible) == 0 {
			return a, nil
		}
		if s.recipientCursor >= len(visible) {
			s.recipientCursor = 0
		}
		d.ToggleRecipient(ch, s.groupCursor, visible[s.recipientCursor])
	case "g":
		if groups := d.GroupsByChannel[ch]; len(groups) > 0 {
			s.groupCursor = (s.groupCursor + 1) % len(groups)
		}
	case "a":
		if d.AddGroup(ch) {
			s.groupCursor = len(d.GroupsByChannel[ch]) - 1
		}
	case "x":
		if !d.RemoveGroup(ch, s.groupCursor) {
			a.status = "a channel keeps at least one group"
			return a, nil
		}
		s.clampCursors()
		a.status = ""
	case "n":
		s.editing = editName
		s.input = d.Name
	case "d":
		if groups := d.GroupsByChannel[ch]; s.groupCursor < len(groups) {
			s.editing = editDescription
			s.input = groups[s.groupCursor].Description
		}
	case "t":
		if groups := d.GroupsByChannel[ch]; s.groupCursor < len(groups) {
			s.editing = editTag
			s.input = groups[s.groupCursor].Tag
		}
	case "/":
		s.editing = editSearch
		s.input = s.search
	}
	return a, nil
}

func (a *App) handleWizardStyleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.wiz
	d := s.wiz.Draft()
	switch m.String() {
	case "tab", "down", "j":
		if len(d.Channels) > 0 {
			s.activeChannel = (s.activeChannel + 1) % len(d.Channels)
		}
	case "up", "k":
		if len(d.Channels) > 0 {
			s.activeChannel = (s.activeChannel + len(d.Channels) - 1) % len(d.Channels)
		}
	case "enter":
		if ch := s.activeChannelID(); ch != "" {
			s.editing = editStyle
			s.input = d.StyleByChannel[ch]
		}
	case "ctrl+s":
		f, ok := s.wiz.Finalize()
		if !ok {
			a.status = "every selected channel needs a message style"
			return a, nil
		}
		if err := a.store.Save(a.ctx, f); err != nil {
			a.log.Error("save format", zap.Error(err))
			a.status = "error: " + err.Error()
			return a, nil
		}
		a.log.Info("format saved", zap.String("id", f.ID), zap.String("name", f.Name))
		a.closeWizard()
		a.status = "format \"" + f.Name + "\" saved"
	}
	return a, nil
}

// handleWizardInputKey edits the active text buffer. Enter commits the
// buffer into the draft through its reducer; esc abandons the edit and
// leaves the draft untouched.
func (a *App) handleWizardInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.wiz
	switch m.Type {
	case tea.KeyEsc:
		s.editing = editNone
		s.input = ""
		return a, nil
	case tea.KeyEnter:
		a.commitWizardInput()
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case tea.KeySpace:
		s.input += " "
	case tea.KeyRunes:
		s.input += string(m.Runes)
	}
	if s.editing == editSearch {
		// live filter
		s.search = s.input
		s.recipientCursor = 0
	}
	return a, nil
}

func (a *App) commitWizardInput() {
	s := a.wiz
	d := s.wiz.Draft()
	ch := s.activeChannelID()
	switch s.editing {
	case editName:
		d.SetName(s.input)
	case editDescription:
		d.SetGroupDescription(ch, s.groupCursor, s.input)
	case editTag:
		d.SetGroupTag(ch, s.groupCursor, s.input)
	case editStyle:
		d.SetStyle(ch, s.input)
	case editSearch:
		s.search = s.input
		s.recipientCursor = 0
	}
	s.editing = editNone
	s.input = ""
}
