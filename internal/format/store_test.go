package format

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// failRepo errors on every write; List succeeds so the store can hydrate.
type failRepo struct{ err error }

func (r failRepo) Upsert(ctx context.Context, f CommunicationFormat) error { return r.err }
func (r failRepo) Delete(ctx context.Context, id string) error             { return r.err }
func (r failRepo) List(ctx context.Context) ([]CommunicationFormat, error) { return nil, nil }

func TestSaveAppendsAndReplacesInPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	a := buildFormat(t, "Alpha")
	b := buildFormat(t, "Beta")
	c := buildFormat(t, "Gamma")
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))
	require.NoError(t, store.Save(ctx, c))

	// editing the middle record keeps its position
	edited := b
	edited.Name = "Beta v2"
	require.NoError(t, store.Save(ctx, edited))

	list := store.List()
	require.Len(t, list, 3)
	require.Equal(t, []string{"Alpha", "Beta v2", "Gamma"}, []string{list[0].Name, list[1].Name, list[2].Name})
	require.Equal(t, b.ID, list[1].ID)
}

func TestDuplicateNamesAllowed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)
	require.NoError(t, store.Save(ctx, buildFormat(t, "Digest")))
	require.NoError(t, store.Save(ctx, buildFormat(t, "Digest")))
	require.Len(t, store.List(), 2)
}

func TestDeleteIsNoOpSafe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)
	f := buildFormat(t, "Alpha")
	require.NoError(t, store.Save(ctx, f))

	require.NoError(t, store.Delete(ctx, "no-such-id"))
	require.Len(t, store.List(), 1)

	require.NoError(t, store.Delete(ctx, f.ID))
	require.Empty(t, store.List())
	_, ok := store.Get(f.ID)
	require.False(t, ok)
}

func TestFailedPersistenceLeavesMemoryUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	broken := errors.New("disk full")
	store := NewStore(failRepo{err: broken})
	require.NoError(t, store.Load(ctx))

	f := buildFormat(t, "Alpha")
	require.ErrorIs(t, store.Save(ctx, f), broken)
	require.Empty(t, store.List())

	// seed directly, then verify a failed delete keeps the record
	store.formats = []CommunicationFormat{f}
	require.ErrorIs(t, store.Delete(ctx, f.ID), broken)
	require.Len(t, store.List(), 1)
}

func TestSaveRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(nil)

	cases := []struct {
		name   string
		mutate func(*CommunicationFormat)
	}{
		{"missing name", func(f *CommunicationFormat) { f.Name = "" }},
		{"missing id", func(f *CommunicationFormat) { f.ID = "" }},
		{"no channels", func(f *CommunicationFormat) { f.Channels = nil }},
		{"no recipients", func(f *CommunicationFormat) { f.Recipients = nil }},
		{"no style payload", func(f *CommunicationFormat) { f.MessageStyle = "" }},
	}
	for _, tc := range cases {
		f := buildFormat(t, "Valid")
		tc.mutate(&f)
		require.Error(t, store.Save(ctx, f), tc.name)
	}
	require.Empty(t, store.List())
}

func TestStyleEncodingRoundTrip(t *testing.T) {
	t.Parallel()

	styles := map[string]string{"slack": "terse", "email": "formal prose"}
	require.Equal(t, styles, DecodeStyles(EncodeStyles(styles)))
	require.Empty(t, DecodeStyles(""))
	require.Empty(t, DecodeStyles("not json"))
	require.Equal(t, "{}", EncodeStyles(nil))
}
