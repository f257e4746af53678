package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"briefdeck/internal/database"
	"briefdeck/internal/format"
)

func openTestDB(t *testing.T) *testDB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &testDB{Formats: NewFormatRepo(db), Meetings: NewMeetingRepo(db)}
}

type testDB struct {
	Formats  *FormatRepo
	Meetings *MeetingRepo
}

func testFormat(name string) format.CommunicationFormat {
	now := time.Now().UTC().Truncate(time.Second)
	return format.CommunicationFormat{
		ID:           "id-" + name,
		Name:         name,
		Channels:     []string{"slack", "email"},
		Recipients:   []string{"dev-team", "alice@company.com"},
		MessageStyle: format.EncodeStyles(map[string]string{"slack": "terse", "email": "formal"}),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tdb := openTestDB(t)

	f := testFormat("Alpha")
	require.NoError(t, tdb.Formats.Upsert(ctx, f))

	list, err := tdb.Formats.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, f.ID, list[0].ID)
	require.Equal(t, f.Name, list[0].Name)
	require.Equal(t, f.Channels, list[0].Channels)
	require.Equal(t, f.Recipients, list[0].Recipients)
	require.Equal(t, f.MessageStyle, list[0].MessageStyle)
}

func TestFormatListKeepsInsertionOrderAcrossUpserts(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tdb := openTestDB(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		require.NoError(t, tdb.Formats.Upsert(ctx, testFormat(name)))
	}

	edited := testFormat("Alpha")
	edited.Name = "Alpha v2"
	edited.UpdatedAt = edited.UpdatedAt.Add(time.Minute)
	require.NoError(t, tdb.Formats.Upsert(ctx, edited))

	list, err := tdb.Formats.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Alpha v2", list[0].Name) // edit keeps position 0
	require.Equal(t, "Beta", list[1].Name)
	require.Equal(t, "Gamma", list[2].Name)
}

func TestFormatDelete(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tdb := openTestDB(t)

	f := testFormat("Alpha")
	require.NoError(t, tdb.Formats.Upsert(ctx, f))
	require.NoError(t, tdb.Formats.Delete(ctx, f.ID))
	require.NoError(t, tdb.Formats.Delete(ctx, f.ID)) // absent is fine

	list, err := tdb.Formats.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStoreHydratesFromRepo(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tdb := openTestDB(t)

	store := format.NewStore(tdb.Formats)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Save(ctx, testFormat("Alpha")))
	require.NoError(t, store.Save(ctx, testFormat("Beta")))

	fresh := format.NewStore(tdb.Formats)
	require.NoError(t, fresh.Load(ctx))
	require.Equal(t, store.List(), fresh.List())
}
