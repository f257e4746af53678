package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"briefdeck/internal/format"
	"briefdeck/internal/meeting"
)

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func (a *App) renderMeetings() string {
	title := titleStyle.Render("Meetings")
	out := title + "\n"
	if len(a.meetings) == 0 {
		out += "(no meetings)\n"
	}
	for i, mt := range a.meetings {
		marker := " "
		if i == a.meetingCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %s  %-38s  %-7s  %s\n",
			marker, mt.StartedAt.In(a.tz).Format(a.dateFormat), mt.Title, mt.Platform, renderSendStatus(mt))
	}
	if len(a.meetings) > 0 && a.meetingCursor < len(a.meetings) {
		mt := a.meetings[a.meetingCursor]
		out += "\n" + titleStyle.Render("AI Summary") + "\n"
		out += mt.Summary + "\n"
		if len(mt.Topics) > 0 {
			out += "Topics: " + strings.Join(mt.Topics, ", ") + "\n"
		}
		for _, item := range mt.ActionItems {
			out += fmt.Sprintf("- %s (%s, due %s)\n", item.Text, item.Assignee, item.DueDate)
		}
	}
	out += "\n[s] Send summary  [f] Formats  [p] Settings  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func renderSendStatus(mt meeting.Meeting) string {
	switch mt.SendStatus {
	case meeting.StatusSent:
		return "sent"
	case meeting.StatusQueued:
		return "queued"
	default:
		return "draft"
	}
}

func (a *App) renderFormats() string {
	title := titleStyle.Render("Communication Formats")
	out := title + "\n"
	formats := a.store.List()
	if len(formats) == 0 {
		out += "(no formats yet)\n"
	}
	for i, f := range formats {
		marker := " "
		if i == a.formatCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-24s  channels: %-24s  recipients: %d\n",
			marker, f.Name, strings.Join(channelNames(a, f.Channels), ", "), len(f.Recipients))
	}
	if len(formats) > 0 && a.formatCursor < len(formats) {
		f := formats[a.formatCursor]
		styles := format.DecodeStyles(f.MessageStyle)
		out += "\n" + titleStyle.Render(f.Name) + "\n"
		out += "Recipients: " + strings.Join(f.Recipients, ", ") + "\n"
		for _, ch := range f.Channels {
			out += fmt.Sprintf("%s style: %s\n", a.registry.Name(ch), styles[ch])
		}
	}
	out += "\n[n] New  [enter] Edit  [d] Delete  [m] Meetings  [p] Settings  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func channelNames(a *App, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.registry.Name(id))
	}
	return out
}

func (a *App) renderSettings() string {
	title := titleStyle.Render("Settings")
	out := title + "\n"
	out += fmt.Sprintf("Database: %s\n", a.cfg.Database.Path)
	out += fmt.Sprintf("Date format: %s\n", a.cfg.UI.DateFormat)
	out += fmt.Sprintf("Timezone: %s\n", a.cfg.UI.Timezone)
	logPath := a.cfg.Log.Path
	if logPath == "" {
		logPath = "(disabled)"
	}
	out += fmt.Sprintf("Log file: %s\n", logPath)
	out += dimStyle.Render("Changes are written to the config file. BRIEFDECK_* env vars still override on restart.") + "\n"

	if a.settingsEditing != settingsNone {
		out += fmt.Sprintf("\n%s %s▌\n[enter] Apply  [esc] Discard", settingsLabel(a.settingsEditing), a.settingsInput)
		return out
	}

	out += "\n[d] Date format  [t] Timezone  [l] Log file  [m] Meetings  [f] Formats  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalWizard:
		return a.renderWizard()
	case modalConfirmDelete:
		name := a.deletingID
		if f, ok := a.store.Get(a.deletingID); ok {
			name = f.Name
		}
		return titleStyle.Render("Delete format \""+name+"\"?") + "\nThis cannot be undone.\n[y] Yes  [n] No"
	case modalSendPicker:
		out := titleStyle.Render("Send summary with format") + "\n"
		for i, f := range a.store.List() {
			marker := " "
			if i == a.sendCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s (%s)\n", marker, f.Name, strings.Join(f.Channels, ", "))
		}
		out += "[enter] Send  [esc] Cancel"
		return out
	default:
		return ""
	}
}

func (a *App) renderWizard() string {
	s := a.wiz
	if s == nil {
		return ""
	}
	step := s.wiz.Step()
	mode := "New format"
	if s.wiz.Editing() {
		mode = "Edit format"
	}
	out := titleStyle.Render(fmt.Sprintf("%s - Step %d/3: %s", mode, int(step)+1, step.Title())) + "\n"

	switch step {
	case format.StepSelectChannels:
		out += a.renderWizardChannels()
	case format.StepDefineRecipients:
		out += a.renderWizardRecipients()
	case format.StepDefineMessageStyle:
		out += a.renderWizardStyle()
	}

	if s.editing != editNone {
		out += fmt.Sprintf("\n%s %s▌\n[enter] Apply  [esc] Discard", inputLabel(s.editing), s.input)
		return out
	}

	out += "\n" + a.renderWizardFooter()
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func inputLabel(t editTarget) string {
	switch t {
	case editName:
		return "Format name:"
	case editDescription:
		return "Group description:"
	case editTag:
		return "Group tag:"
	case editStyle:
		return "Message style:"
	case editSearch:
		return "Filter recipients:"
	}
	return ""
}

func (a *App) renderWizardChannels() string {
	s := a.wiz
	d := s.wiz.Draft()
	var out string
	for i, c := range a.registry.List() {
		marker := " "
		if i == s.channelCursor {
			marker = "▶"
		}
		box := "[ ]"
		if d.HasChannel(c.ID) {
			box = "[x]"
		}
		label := c.Name
		if !c.Available {
			label += dimStyle.Render(" (coming soon)")
		}
		out += fmt.Sprintf("%s %s %s\n", marker, box, label)
	}
	return out
}

func (a *App) renderWizardRecipients() string {
	s := a.wiz
	d := s.wiz.Draft()
	ch := s.activeChannelID()
	name := d.Name
	if name == "" {
		name = dimStyle.Render("(unnamed - press [n])")
	}
	out := "Name: " + name + "\n"
	out += "Channel: " + a.renderChannelTabs() + "\n"

	groups := d.GroupsByChannel[ch]
	for gi, g := range groups {
		marker := " "
		if gi == s.groupCursor {
			marker = "▶"
		}
		desc := g.Description
		if desc == "" {
			desc = fmt.Sprintf("group %d", gi+1)
		}
		line := fmt.Sprintf("%s %s", marker, desc)
		if g.Tag != "" {
			line += " #" + g.Tag
		}
		line += fmt.Sprintf(": %s", strings.Join(g.Recipients, ", "))
		out += line + "\n"
	}

	out += "\nRecipients"
	if s.search != "" {
		out += fmt.Sprintf(" (filter: %q)", s.search)
	}
	out += ":\n"
	visible := a.catalog.Search(s.search)
	active := map[string]bool{}
	if s.groupCursor < len(groups) {
		for _, r := range groups[s.groupCursor].Recipients {
			active[r] = true
		}
	}
	for i, id := range visible {
		marker := " "
		if i == s.recipientCursor {
			marker = "▶"
		}
		box := "[ ]"
		if active[id] {
			box = "[x]"
		}
		out += fmt.Sprintf("%s %s %s\n", marker, box, id)
	}
	return out
}

func (a *App) renderChannelTabs() string {
	s := a.wiz
	d := s.wiz.Draft()
	var tabs []string
	for i, ch := range d.Channels {
		label := a.registry.Name(ch)
		if i == s.activeChannel {
			label = "<" + label + ">"
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}

func (a *App) renderWizardStyle() string {
	s := a.wiz
	d := s.wiz.Draft()
	var out string
	for i, ch := range d.Channels {
		marker := " "
		if i == s.activeChannel {
			marker = "▶"
		}
		style := d.StyleByChannel[ch]
		if strings.TrimSpace(style) == "" {
			style = dimStyle.Render("(empty - press [enter] to edit)")
		}
		out += fmt.Sprintf("%s %-18s %s\n", marker, a.registry.Name(ch), style)
	}
	return out
}

func (a *App) renderWizardFooter() string {
	s := a.wiz
	switch s.wiz.Step() {
	case format.StepSelectChannels:
		next := "[→] Next"
		if !s.wiz.CanAdvance() {
			next = dimStyle.Render("(select a channel to continue)")
		}
		return "[space] Toggle  " + next + "  [esc] Cancel"
	case format.StepDefineRecipients:
		next := "[→] Next"
		if !s.wiz.CanAdvance() {
			next = dimStyle.Render("(name the format and pick a recipient)")
		}
		return "[n] Name  [space] Toggle  [/] Filter  [tab] Channel  [g] Group  [a] Add group  [x] Remove  [d] Desc  [t] Tag  [←] Back  " + next + "  [esc] Cancel"
	case format.StepDefineMessageStyle:
		save := "[ctrl+s] Save"
		if !s.wiz.CanAdvance() {
			save = dimStyle.Render("(every channel needs style text)")
		}
		return "[enter] Edit style  [tab] Channel  [←] Back  " + save + "  [esc] Cancel"
	}
	return ""
}
