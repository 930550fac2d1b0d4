// Package i18n declares the languages the site is written in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	italian = language.MustParse("it-IT")
	english = language.MustParse("en-US")

	supported = []language.Tag{italian, english}
	matcher   = language.NewMatcher(supported)
)

// DefaultTag returns the site default language.
func DefaultTag() language.Tag {
	return italian
}

// SupportedTags returns the supported language tags in display order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag parses value and reports whether it maps to a supported language.
// Bare base languages ("it", "en") resolve to their regional tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, candidate := range supported {
		candidateBase, _ := candidate.Base()
		if candidateBase == base {
			return candidate, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported language for the preferred tags.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}
