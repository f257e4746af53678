package format

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Step identifies a wizard step.
type Step int

const (
	StepSelectChannels Step = iota
	StepDefineRecipients
	StepDefineMessageStyle
)

// Title returns the step heading.
func (s Step) Title() string {
	switch s {
	case StepSelectChannels:
		return "Select Channels"
	case StepDefineRecipients:
		return "Define Recipients"
	case StepDefineMessageStyle:
		return "Define Message Style"
	}
	return ""
}

// Step predicates. Each is a pure function of the draft and is consulted
// fresh on every advance attempt; nothing is cached.

// CanLeaveChannels gates step 1 -> 2: at least one channel selected.
func CanLeaveChannels(d *Draft) bool {
	return len(d.Channels) > 0
}

// CanLeaveRecipients gates step 2 -> 3: a name is set and at least one
// group anywhere holds at least one recipient.
func CanLeaveRecipients(d *Draft) bool {
	if strings.TrimSpace(d.Name) == "" {
		return false
	}
	for _, ch := range d.Channels {
		for _, g := range d.GroupsByChannel[ch] {
			if len(g.Recipients) > 0 {
				return true
			}
		}
	}
	return false
}

// CanFinalize gates the commit: every selected channel has non-empty
// style text.
func CanFinalize(d *Draft) bool {
	if len(d.Channels) == 0 {
		return false
	}
	for _, ch := range d.Channels {
		if strings.TrimSpace(d.StyleByChannel[ch]) == "" {
			return false
		}
	}
	return true
}

// Wizard drives the three-step flow that assembles a draft into a saved
// format. It owns its draft for the duration of the session; cancelling
// discards the draft without side effects.
type Wizard struct {
	draft     *Draft
	step      Step
	editingID string
	createdAt time.Time
}

// NewWizard starts a session with an empty draft.
func NewWizard() *Wizard {
	return &Wizard{draft: NewDraft()}
}

// EditWizard starts a session seeded from an existing record. The record's
// identifier is reused on finalize so the store entry is replaced in place.
func EditWizard(f CommunicationFormat) *Wizard {
	return &Wizard{
		draft:     DraftFromFormat(f),
		editingID: f.ID,
		createdAt: f.CreatedAt,
	}
}

// Draft exposes the session's working draft for mutation by the step views.
func (w *Wizard) Draft() *Draft { return w.draft }

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Editing reports whether the session edits an existing record.
func (w *Wizard) Editing() bool { return w.editingID != "" }

// CanAdvance evaluates the current step's predicate against the draft.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepSelectChannels:
		return CanLeaveChannels(w.draft)
	case StepDefineRecipients:
		return CanLeaveRecipients(w.draft)
	case StepDefineMessageStyle:
		return CanFinalize(w.draft)
	}
	return false
}

// Next moves forward one step if the current predicate allows it.
// From the final step use Finalize instead.
func (w *Wizard) Next() bool {
	if w.step >= StepDefineMessageStyle || !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step. Always allowed; entered data for
// still-selected channels is kept.
func (w *Wizard) Back() bool {
	if w.step == StepSelectChannels {
		return false
	}
	w.step--
	return true
}

// Finalize serializes the draft into a record. It fails (false) unless the
// session is on the final step and the commit predicate holds. A fresh
// identifier is minted for new records; edits keep the seeded one.
func (w *Wizard) Finalize() (CommunicationFormat, bool) {
	if w.step != StepDefineMessageStyle || !CanFinalize(w.draft) {
		return CommunicationFormat{}, false
	}
	now := time.Now().UTC()
	f := CommunicationFormat{
		ID:           w.editingID,
		Name:         strings.TrimSpace(w.draft.Name),
		Channels:     append([]string(nil), w.draft.Channels...),
		Recipients:   w.draft.Recipients(),
		MessageStyle: EncodeStyles(w.draft.StyleByChannel),
		CreatedAt:    w.createdAt,
		UpdatedAt:    now,
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	return f, true
}
