// Package meeting holds the meeting records shown on the dashboard. The
// summaries are fixed placeholder content; no transcription or analysis
// runs in this process.
package meeting

import "time"

// Send status values for a meeting summary.
const (
	StatusDraft  = "draft"
	StatusQueued = "queued"
	StatusSent   = "sent"
)

// ActionItem is a follow-up extracted from a meeting.
type ActionItem struct {
	Text     string
	Assignee string
	DueDate  string
}

// Meeting is one meeting with its summary and distribution state.
type Meeting struct {
	ID          string
	Title       string
	Platform    string
	StartedAt   time.Time
	Summary     string
	Topics      []string
	ActionItems []ActionItem
	SendStatus  string
	SentWith    string // format ID used for the last send, if any
}

// SampleMeetings returns the built-in demo records.
func SampleMeetings() []Meeting {
	return []Meeting{
		{
			ID:        "a3c1b2d4-0001-4f00-8000-000000000001",
			Title:     "Q4 Planning Sync",
			Platform:  "teams",
			StartedAt: time.Date(2025, 10, 6, 14, 0, 0, 0, time.UTC),
			Summary:   "This meeting covered Q4 planning, budget approval processes, and team assignments for the upcoming product launch.",
			Topics:    []string{"Q4 Planning", "Budget Approval", "Product Launch"},
			ActionItems: []ActionItem{
				{Text: "Finalize budget proposal", Assignee: "Alice", DueDate: "2025-10-15"},
				{Text: "Coordinate with marketing on launch timeline", Assignee: "Bob", DueDate: "2025-10-20"},
			},
			SendStatus: StatusDraft,
		},
		{
			ID:        "a3c1b2d4-0002-4f00-8000-000000000002",
			Title:     "Weekly Engineering Standup",
			Platform:  "slack",
			StartedAt: time.Date(2025, 10, 8, 9, 30, 0, 0, time.UTC),
			Summary:   "The team reviewed sprint progress, flagged a flaky integration test suite, and agreed to freeze new feature work until the release branch stabilizes.",
			Topics:    []string{"Sprint Progress", "Test Stability", "Release Freeze"},
			ActionItems: []ActionItem{
				{Text: "Quarantine flaky integration tests", Assignee: "Charlie", DueDate: "2025-10-10"},
			},
			SendStatus: StatusDraft,
		},
		{
			ID:        "a3c1b2d4-0003-4f00-8000-000000000003",
			Title:     "Design Review: Onboarding Flow",
			Platform:  "teams",
			StartedAt: time.Date(2025, 10, 9, 11, 0, 0, 0, time.UTC),
			Summary:   "Walkthrough of the revised onboarding screens. Copy changes approved; the progress indicator needs another iteration before handoff.",
			Topics:    []string{"Onboarding", "Visual Design", "Handoff"},
			ActionItems: []ActionItem{
				{Text: "Revise progress indicator states", Assignee: "Dana", DueDate: "2025-10-14"},
			},
			SendStatus: StatusDraft,
		},
	}
}
