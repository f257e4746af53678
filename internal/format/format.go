package format

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CommunicationFormat is a saved, named configuration mapping channels to
// recipients and per-channel message style. MessageStyle holds the
// channel -> style mapping encoded as JSON; the structured form is the
// source of truth and the encoding happens only at the store boundary.
type CommunicationFormat struct {
	ID           string   `validate:"required"`
	Name         string   `validate:"required"`
	Channels     []string `validate:"min=1"`
	Recipients   []string `validate:"min=1"`
	MessageStyle string   `validate:"required"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var validate = validator.New()

// Validate checks the record before it is handed to persistence. The
// wizard predicates already gate all of this; the check guards direct
// store callers.
func Validate(f CommunicationFormat) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	return nil
}

// EncodeStyles serializes a channel -> style mapping for storage.
func EncodeStyles(styles map[string]string) string {
	if len(styles) == 0 {
		return "{}"
	}
	data, err := json.Marshal(styles)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DecodeStyles parses a stored style payload. Malformed payloads decode
// to an empty mapping rather than failing an edit session.
func DecodeStyles(payload string) map[string]string {
	out := map[string]string{}
	if payload == "" {
		return out
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return map[string]string{}
	}
	return out
}
