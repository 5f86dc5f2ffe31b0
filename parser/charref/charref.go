// Package charref resolves named character references by longest-prefix
// match against the WHATWG entity list.
package charref

import (
	"sort"
	"strings"
)

// MaxNameLength is the length of the longest entity name, semicolon
// included. No match ever needs more lookahead than this.
const MaxNameLength = 32

type entity struct {
	name  string
	value string
}

// HasPrefix reports whether some entity name starts with prefix.
func HasPrefix(prefix string) bool {
	i := search(prefix)
	return i < len(entities) && strings.HasPrefix(entities[i].name, prefix)
}

// Lookup returns the replacement text of an exact entity name.
func Lookup(name string) (string, bool) {
	i := search(name)
	if i < len(entities) && entities[i].name == name {
		return entities[i].value, true
	}
	return "", false
}

// LongestMatch returns the longest entity name that is a prefix of s along
// with its replacement text. ok is false when no prefix of s is an entity.
func LongestMatch(s string) (name, value string, ok bool) {
	if len(s) > MaxNameLength {
		s = s[:MaxNameLength]
	}
	for n := len(s); n > 0; n-- {
		if v, found := Lookup(s[:n]); found {
			return s[:n], v, true
		}
	}
	return "", "", false
}

func search(s string) int {
	return sort.Search(len(entities), func(i int) bool {
		return entities[i].name >= s
	})
}
