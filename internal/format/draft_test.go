package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipientsProjectionTracksGroups(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	require.Empty(t, d.Recipients())

	d.ToggleChannel("slack")
	d.ToggleChannel("email")
	require.Empty(t, d.Recipients())

	require.True(t, d.ToggleRecipient("slack", 0, "dev-team"))
	require.True(t, d.ToggleRecipient("email", 0, "alice@company.com"))
	require.True(t, d.ToggleRecipient("email", 0, "dev-team")) // duplicate across channels
	require.Equal(t, []string{"dev-team", "alice@company.com"}, d.Recipients())

	// toggling off in one group keeps the union correct
	require.True(t, d.ToggleRecipient("slack", 0, "dev-team"))
	require.Equal(t, []string{"alice@company.com", "dev-team"}, d.Recipients())

	require.True(t, d.AddGroup("slack"))
	require.True(t, d.ToggleRecipient("slack", 1, "qa-guild"))
	require.Equal(t, []string{"qa-guild", "alice@company.com", "dev-team"}, d.Recipients())

	// removing a group re-derives the union
	require.True(t, d.RemoveGroup("slack", 1))
	require.Equal(t, []string{"alice@company.com", "dev-team"}, d.Recipients())
}

func TestDeselectChannelCascades(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	d.ToggleChannel("slack")
	d.ToggleChannel("teams")
	require.True(t, d.ToggleRecipient("slack", 0, "dev-team"))
	require.True(t, d.ToggleRecipient("teams", 0, "product-leads"))
	require.True(t, d.SetStyle("slack", "terse"))
	require.True(t, d.SetStyle("teams", "formal"))

	d.ToggleChannel("teams")

	require.Equal(t, []string{"slack"}, d.Channels)
	require.NotContains(t, d.GroupsByChannel, "teams")
	require.NotContains(t, d.StyleByChannel, "teams")
	// the other channel's entries are untouched
	require.Len(t, d.GroupsByChannel["slack"], 1)
	require.Equal(t, []string{"dev-team"}, d.GroupsByChannel["slack"][0].Recipients)
	require.Equal(t, "terse", d.StyleByChannel["slack"])
	require.Equal(t, []string{"dev-team"}, d.Recipients())
}

func TestReselectChannelStartsClean(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	d.ToggleChannel("slack")
	require.True(t, d.ToggleRecipient("slack", 0, "dev-team"))
	require.True(t, d.SetStyle("slack", "terse"))

	d.ToggleChannel("slack")
	d.ToggleChannel("slack")

	require.Len(t, d.GroupsByChannel["slack"], 1)
	require.Empty(t, d.GroupsByChannel["slack"][0].Recipients)
	require.Empty(t, d.StyleByChannel["slack"])
}

func TestLastGroupCannotBeRemoved(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	d.ToggleChannel("slack")
	require.False(t, d.RemoveGroup("slack", 0))
	require.True(t, d.AddGroup("slack"))
	require.True(t, d.RemoveGroup("slack", 1))
	require.False(t, d.RemoveGroup("slack", 0))
	require.Len(t, d.GroupsByChannel["slack"], 1)
}

func TestGroupMetadataEdits(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	d.ToggleChannel("slack")
	require.True(t, d.SetGroupDescription("slack", 0, "core devs"))
	require.True(t, d.SetGroupTag("slack", 0, "eng"))
	require.False(t, d.SetGroupDescription("slack", 5, "nope"))
	require.False(t, d.SetGroupTag("teams", 0, "nope"))

	g := d.GroupsByChannel["slack"][0]
	require.Equal(t, "core devs", g.Description)
	require.Equal(t, "eng", g.Tag)
}

func TestStyleRequiresSelectedChannel(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	require.False(t, d.SetStyle("slack", "terse"))
	d.ToggleChannel("slack")
	require.True(t, d.SetStyle("slack", "terse"))
}

func TestDraftFromFormatCopiesRecord(t *testing.T) {
	t.Parallel()

	f := CommunicationFormat{
		ID:           "f1",
		Name:         "Dev Digest",
		Channels:     []string{"slack", "email"},
		Recipients:   []string{"dev-team", "qa-guild"},
		MessageStyle: EncodeStyles(map[string]string{"slack": "terse", "email": "formal"}),
	}
	d := DraftFromFormat(f)

	require.Equal(t, "Dev Digest", d.Name)
	require.Equal(t, []string{"slack", "email"}, d.Channels)
	require.Equal(t, "terse", d.StyleByChannel["slack"])
	require.Equal(t, "formal", d.StyleByChannel["email"])
	require.ElementsMatch(t, []string{"dev-team", "qa-guild"}, d.Recipients())

	// mutating the draft never reaches back into the record
	d.ToggleRecipient("slack", 0, "dev-team")
	d.SetStyle("slack", "changed")
	require.Equal(t, []string{"dev-team", "qa-guild"}, f.Recipients)
	require.Equal(t, EncodeStyles(map[string]string{"slack": "terse", "email": "formal"}), f.MessageStyle)
}
