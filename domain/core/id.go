package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SessionID  ID
	AnalysisID ID
)

func (id SessionID) String() string  { return ID(id).String() }
func (id AnalysisID) String() string { return ID(id).String() }

// NewSessionID returns a fresh session identifier
func NewSessionID() SessionID { return SessionID(NewID()) }

// NewAnalysisID returns a fresh analysis identifier
func NewAnalysisID() AnalysisID { return AnalysisID(NewID()) }

// ParseSessionID validates a session identifier received from a client.
// Only well-formed UUIDs are accepted.
func ParseSessionID(s string) (SessionID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("malformed session ID %q: %w", s, err)
	}
	return SessionID(parsed.String()), nil
}
