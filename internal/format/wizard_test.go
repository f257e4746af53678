package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepOneGatesOnChannels(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	require.Equal(t, StepSelectChannels, w.Step())
	require.False(t, w.CanAdvance())
	require.False(t, w.Next())

	// name and recipients are irrelevant to step 1
	w.Draft().SetName("irrelevant")
	require.False(t, w.CanAdvance())

	w.Draft().ToggleChannel("teams")
	require.True(t, w.CanAdvance())
	w.Draft().ToggleChannel("teams")
	require.False(t, w.CanAdvance())
}

func TestStepTwoGatesOnNameAndRecipients(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	w.Draft().ToggleChannel("slack")
	require.True(t, w.Next())
	require.Equal(t, StepDefineRecipients, w.Step())

	require.False(t, w.CanAdvance()) // no name, no recipients
	w.Draft().SetName("Dev Digest")
	require.False(t, w.CanAdvance()) // still no recipients
	w.Draft().ToggleRecipient("slack", 0, "dev-team")
	require.True(t, w.CanAdvance())

	w.Draft().SetName("   ")
	require.False(t, w.CanAdvance()) // whitespace name does not count
	w.Draft().SetName("Dev Digest")
	require.True(t, w.Next())
}

func TestFinalizeGatesOnStylePerChannel(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	d := w.Draft()
	d.ToggleChannel("slack")
	d.ToggleChannel("email")
	require.True(t, w.Next())
	d.SetName("Dev Digest")
	d.ToggleRecipient("slack", 0, "dev-team")
	require.True(t, w.Next())
	require.Equal(t, StepDefineMessageStyle, w.Step())

	_, ok := w.Finalize()
	require.False(t, ok)

	d.SetStyle("slack", "terse technical notes")
	_, ok = w.Finalize()
	require.False(t, ok) // email still empty

	d.SetStyle("email", "   ")
	require.False(t, CanFinalize(d)) // whitespace style does not count

	d.SetStyle("email", "formal prose")
	f, ok := w.Finalize()
	require.True(t, ok)
	require.NotEmpty(t, f.ID)
	require.Equal(t, "Dev Digest", f.Name)
	require.Equal(t, []string{"slack", "email"}, f.Channels)
	require.Equal(t, []string{"dev-team"}, f.Recipients)
	styles := DecodeStyles(f.MessageStyle)
	require.Equal(t, "terse technical notes", styles["slack"])
	require.Equal(t, "formal prose", styles["email"])
	require.False(t, f.CreatedAt.IsZero())
}

func TestFinalizeRefusedOffFinalStep(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	w.Draft().ToggleChannel("slack")
	w.Draft().SetStyle("slack", "terse")
	_, ok := w.Finalize()
	require.False(t, ok)
}

func TestBackNavigationKeepsData(t *testing.T) {
	t.Parallel()

	w := NewWizard()
	d := w.Draft()
	d.ToggleChannel("slack")
	require.True(t, w.Next())
	d.SetName("Dev Digest")
	d.ToggleRecipient("slack", 0, "dev-team")
	require.True(t, w.Next())
	d.SetStyle("slack", "terse")

	require.True(t, w.Back())
	require.True(t, w.Back())
	require.Equal(t, StepSelectChannels, w.Step())
	require.False(t, w.Back())

	require.Equal(t, "Dev Digest", d.Name)
	require.Equal(t, []string{"dev-team"}, d.GroupsByChannel["slack"][0].Recipients)
	require.Equal(t, "terse", d.StyleByChannel["slack"])
}

func TestEditKeepsIdentifierAndCreatedAt(t *testing.T) {
	t.Parallel()

	orig := buildFormat(t, "Dev Digest")
	w := EditWizard(orig)
	require.True(t, w.Editing())
	d := w.Draft()

	require.True(t, w.Next())
	d.SetName("Dev Digest v2")
	require.True(t, w.Next())
	d.SetStyle("slack", "even terser")

	f, ok := w.Finalize()
	require.True(t, ok)
	require.Equal(t, orig.ID, f.ID)
	require.Equal(t, orig.CreatedAt, f.CreatedAt)
	require.Equal(t, "Dev Digest v2", f.Name)
}

func TestFreshIdentifiersDoNotCollide(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)
	seen := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		f := buildFormat(t, "Format")
		_, dup := seen[f.ID]
		require.False(t, dup)
		seen[f.ID] = struct{}{}
		require.NoError(t, store.Save(ctx, f))
	}
	require.Len(t, store.List(), 5)
}

// buildFormat walks a wizard through the minimal happy path.
func buildFormat(t *testing.T, name string) CommunicationFormat {
	t.Helper()
	w := NewWizard()
	d := w.Draft()
	d.ToggleChannel("slack")
	require.True(t, w.Next())
	d.SetName(name)
	d.ToggleRecipient("slack", 0, "dev-team")
	require.True(t, w.Next())
	d.SetStyle("slack", "terse technical notes")
	f, ok := w.Finalize()
	require.True(t, ok)
	return f
}
