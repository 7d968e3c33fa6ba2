package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Workspace is the collaborative space users join. Referenced by memberships and invitations,
// never mutated after creation.
type Workspace struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate validates the workspace for persistence. Returns an error describing the first validation failure.
func (w *Workspace) Validate() error {
	w.Name = strings.TrimSpace(w.Name)
	w.Slug = strings.ToLower(strings.TrimSpace(w.Slug))
	if w.Name == "" {
		return errors.New("name is required")
	}
	if w.Slug == "" {
		return errors.New("slug is required")
	}
	if len(w.Slug) > 63 || !slugPattern.MatchString(w.Slug) {
		return errors.New("slug must be lowercase letters, digits and single hyphens")
	}
	return nil
}
