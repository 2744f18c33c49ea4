package roster

import (
	"fmt"
	"strings"
)

// DuplicateKeyError reports a short-code that appears more than once where
// uniqueness is required.
type DuplicateKeyError struct {
	Kind  string // "author", "affiliation", "acknowledgement"
	Key   string
	Where string // Roster or paper the duplicate was found in
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("the %s *%s* is duplicated in %s", e.Kind, e.Key, e.Where)
}

// UnknownReferenceError reports a short-code reference that does not
// resolve against its roster.
type UnknownReferenceError struct {
	Kind         string // Kind of the missing record
	Code         string // The dangling short-code ("" for an empty entry)
	ReferencedBy string // The record holding the reference
}

func (e *UnknownReferenceError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("empty %s entry in %s", e.Kind, e.ReferencedBy)
	}
	return fmt.Sprintf("the %s *%s* referenced by %s is not in the %s list",
		e.Kind, e.Code, e.ReferencedBy, e.Kind)
}

// InvalidFormatError reports a malformed field value.
type InvalidFormatError struct {
	Field string
	Value string
	Owner string // Record the field belongs to
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s *%s* for %s", e.Field, e.Value, e.Owner)
}

// UnresolvedStyleError reports a paper style outside the allowed set.
type UnresolvedStyleError struct {
	Style string
	Paper string
}

func (e *UnresolvedStyleError) Error() string {
	return fmt.Sprintf("paper %s: the style *%s* is not allowed (allowed: %s)",
		e.Paper, e.Style, strings.Join(AllowedStyles, ", "))
}
