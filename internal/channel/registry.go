// Package channel holds the static catalog of messaging channels a
// communication format can target.
package channel

// Channel is a messaging destination type. The catalog is fixed at
// process start; entries are never mutated.
type Channel struct {
	ID        string
	Name      string
	Available bool
}

// Registry is the read-only channel catalog.
type Registry struct {
	channels []Channel
	byID     map[string]Channel
}

// NewRegistry builds a registry from the given catalog, preserving order.
func NewRegistry(channels []Channel) *Registry {
	r := &Registry{
		channels: make([]Channel, len(channels)),
		byID:     make(map[string]Channel, len(channels)),
	}
	copy(r.channels, channels)
	for _, c := range channels {
		r.byID[c.ID] = c
	}
	return r
}

// DefaultRegistry returns the built-in catalog.
func DefaultRegistry() *Registry {
	return NewRegistry([]Channel{
		{ID: "slack", Name: "Slack", Available: true},
		{ID: "teams", Name: "Microsoft Teams", Available: true},
		{ID: "email", Name: "Email", Available: true},
		{ID: "discord", Name: "Discord", Available: false}, // coming soon
	})
}

// List returns the catalog in declaration order.
func (r *Registry) List() []Channel {
	out := make([]Channel, len(r.channels))
	copy(out, r.channels)
	return out
}

// Get looks up a channel by ID.
func (r *Registry) Get(id string) (Channel, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Name returns the display name for an ID, falling back to the ID itself
// for unknown channels (stored formats may outlive catalog changes).
func (r *Registry) Name(id string) string {
	if c, ok := r.byID[id]; ok {
		return c.Name
	}
	return id
}

// Selectable reports whether the channel exists and is available.
func (r *Registry) Selectable(id string) bool {
	c, ok := r.byID[id]
	return ok && c.Available
}
