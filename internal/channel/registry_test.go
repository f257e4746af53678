package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	list := r.List()
	require.NotEmpty(t, list)

	c, ok := r.Get("slack")
	require.True(t, ok)
	require.Equal(t, "Slack", c.Name)
	require.True(t, r.Selectable("slack"))

	// coming-soon channels are listed but not selectable
	require.False(t, r.Selectable("discord"))

	_, ok = r.Get("pager")
	require.False(t, ok)
	require.False(t, r.Selectable("pager"))
	require.Equal(t, "pager", r.Name("pager")) // unknown IDs render as-is
}
