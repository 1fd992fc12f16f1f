package inventory

import (
	"regexp"
	"strings"
)

// Sanitizer rewrites free-text entity names into strings usable as Ansible
// group names and variable keys.
type Sanitizer struct {
	unsafe *regexp.Regexp
}

// NewSanitizer compiles the character class once. Dashes are allowed unless
// replaceDash is set, in which case they are rewritten like any other
// unsafe character.
func NewSanitizer(replaceDash bool) *Sanitizer {
	class := `[^A-Za-z0-9_-]`
	if replaceDash {
		class = `[^A-Za-z0-9_]`
	}
	return &Sanitizer{unsafe: regexp.MustCompile(class)}
}

// Safe replaces every character outside the allowed set with an underscore,
// then strips a single leading underscore.
func (s *Sanitizer) Safe(word string) string {
	return strings.TrimPrefix(s.unsafe.ReplaceAllString(word, "_"), "_")
}
