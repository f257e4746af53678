// Package format implements communication formats: the wizard draft, the
// step state machine that assembles one, and the store of saved records.
package format

// RecipientGroup is a cluster of recipients under one channel, with
// optional descriptive metadata.
type RecipientGroup struct {
	Recipients  []string
	Description string
	Tag         string
}

// Draft is the in-progress configuration being built by the wizard. All
// mutation goes through methods so the per-channel maps never hold entries
// for deselected channels.
type Draft struct {
	Name            string
	Channels        []string // selection order, keys for the maps below
	GroupsByChannel map[string][]RecipientGroup
	StyleByChannel  map[string]string
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		GroupsByChannel: map[string][]RecipientGroup{},
		StyleByChannel:  map[string]string{},
	}
}

// DraftFromFormat copies a saved record into a fresh draft for editing.
// Groups are not persisted, so each channel gets a single group holding the
// record's recipients. The record itself is never touched.
func DraftFromFormat(f CommunicationFormat) *Draft {
	d := NewDraft()
	d.Name = f.Name
	styles := DecodeStyles(f.MessageStyle)
	for _, ch := range f.Channels {
		d.Channels = append(d.Channels, ch)
		group := RecipientGroup{Recipients: append([]string(nil), f.Recipients...)}
		d.GroupsByChannel[ch] = []RecipientGroup{group}
		if s, ok := styles[ch]; ok {
			d.StyleByChannel[ch] = s
		}
	}
	return d
}

// SetName sets the draft name.
func (d *Draft) SetName(name string) { d.Name = name }

// HasChannel reports whether id is currently selected.
func (d *Draft) HasChannel(id string) bool {
	for _, ch := range d.Channels {
		if ch == id {
			return true
		}
	}
	return false
}

// ToggleChannel selects or deselects a channel. Selecting seeds one empty
// recipient group so the recipients step always has a group to edit.
// Deselecting cascade-removes the channel's groups and style entry in the
// same action; no stale per-channel data survives.
func (d *Draft) ToggleChannel(id string) {
	for i, ch := range d.Channels {
		if ch == id {
			d.Channels = append(d.Channels[:i], d.Channels[i+1:]...)
			delete(d.GroupsByChannel, id)
			delete(d.StyleByChannel, id)
			return
		}
	}
	d.Channels = append(d.Channels, id)
	d.GroupsByChannel[id] = []RecipientGroup{{}}
}

// AddGroup appends an empty recipient group to a selected channel.
func (d *Draft) AddGroup(channelID string) bool {
	if !d.HasChannel(channelID) {
		return false
	}
	d.GroupsByChannel[channelID] = append(d.GroupsByChannel[channelID], RecipientGroup{})
	return true
}

// RemoveGroup removes group idx from a channel. The last remaining group
// of a channel cannot be removed.
func (d *Draft) RemoveGroup(channelID string, idx int) bool {
	groups := d.GroupsByChannel[channelID]
	if idx < 0 || idx >= len(groups) || len(groups) <= 1 {
		return false
	}
	d.GroupsByChannel[channelID] = append(groups[:idx], groups[idx+1:]...)
	return true
}

// ToggleRecipient adds or removes a recipient in the given group.
func (d *Draft) ToggleRecipient(channelID string, groupIdx int, recipient string) bool {
	groups := d.GroupsByChannel[channelID]
	if groupIdx < 0 || groupIdx >= len(groups) {
		return false
	}
	g := &groups[groupIdx]
	for i, r := range g.Recipients {
		if r == recipient {
			g.Recipients = append(g.Recipients[:i], g.Recipients[i+1:]...)
			return true
		}
	}
	g.Recipients = append(g.Recipients, recipient)
	return true
}

// SetGroupDescription updates a group's description.
func (d *Draft) SetGroupDescription(channelID string, idx int, desc string) bool {
	groups := d.GroupsByChannel[channelID]
	if idx < 0 || idx >= len(groups) {
		return false
	}
	groups[idx].Description = desc
	return true
}

// SetGroupTag updates a group's tag.
func (d *Draft) SetGroupTag(channelID string, idx int, tag string) bool {
	groups := d.GroupsByChannel[channelID]
	if idx < 0 || idx >= len(groups) {
		return false
	}
	groups[idx].Tag = tag
	return true
}

// SetStyle sets the message style text for a selected channel.
func (d *Draft) SetStyle(channelID, style string) bool {
	if !d.HasChannel(channelID) {
		return false
	}
	d.StyleByChannel[channelID] = style
	return true
}

// Recipients is the flattened, de-duplicated union of recipients across
// all groups of all channels, first-seen order. It is computed on demand
// and never stored, so it cannot drift from the groups.
func (d *Draft) Recipients() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, ch := range d.Channels {
		for _, g := range d.GroupsByChannel[ch] {
			for _, r := range g.Recipients {
				if _, ok := seen[r]; ok {
					continue
				}
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}
	return out
}
