package format

import (
	"context"
	"fmt"
)

// Repo is the persistence collaborator behind the store. The in-memory
// list stays authoritative for ordering; the repo mirrors it.
type Repo interface {
	Upsert(ctx context.Context, f CommunicationFormat) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]CommunicationFormat, error)
}

// Store owns the collection of saved formats. It is the only component
// that mutates the collection; all access happens on the UI goroutine so
// no locking is needed.
type Store struct {
	formats []CommunicationFormat
	repo    Repo
}

// NewStore returns a store backed by repo. A nil repo gives a purely
// in-memory store (used by tests and the headless check).
func NewStore(repo Repo) *Store {
	return &Store{repo: repo}
}

// Load hydrates the store from the repo.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	formats, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load formats: %w", err)
	}
	s.formats = formats
	return nil
}

// Save validates and stores a record. A record whose ID matches an
// existing entry replaces it in place, keeping its position; anything
// else is appended. Names are not required to be unique. The repo write
// happens first so a persistence failure leaves the in-memory list
// matching what is on disk.
func (s *Store) Save(ctx context.Context, f CommunicationFormat) error {
	if err := Validate(f); err != nil {
		return err
	}
	if s.repo != nil {
		if err := s.repo.Upsert(ctx, f); err != nil {
			return fmt.Errorf("persist format: %w", err)
		}
	}
	for i := range s.formats {
		if s.formats[i].ID == f.ID {
			s.formats[i] = f
			return nil
		}
	}
	s.formats = append(s.formats, f)
	return nil
}

// Delete removes the record with the given identifier. Unknown
// identifiers are a no-op. As with Save, the repo write comes first.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.repo != nil {
		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete format: %w", err)
		}
	}
	for i := range s.formats {
		if s.formats[i].ID == id {
			s.formats = append(s.formats[:i], s.formats[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the record with the given identifier.
func (s *Store) Get(id string) (CommunicationFormat, bool) {
	for _, f := range s.formats {
		if f.ID == id {
			return f, true
		}
	}
	return CommunicationFormat{}, false
}

// List returns the saved records in insertion order.
func (s *Store) List() []CommunicationFormat {
	out := make([]CommunicationFormat, len(s.formats))
	copy(out, s.formats)
	return out
}
