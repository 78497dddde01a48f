package internal

import (
	"regexp"
	"sort"
	"strings"
)

// HelperPrefixMatcher recognizes the longest registered helper or
// block-helper name at the start of a tag body, so multi-word helpers
// such as "else if" are bound as a single name instead of being split
// on the first whitespace by the fallback in MakeTag. Per spec.md §4.F,
// when no non-sentinel names are registered, the matcher is absent
// (nil) rather than an always-failing regex.
type HelperPrefixMatcher struct {
	re *regexp.Regexp
}

// NewHelperPrefixMatcher builds a matcher over names, excluding any name
// containing the reserved "__..__" sentinel token. Names are sorted by
// length descending before being joined into a regex alternation so the
// longest match always wins regardless of registration order.
func NewHelperPrefixMatcher(names []string) *HelperPrefixMatcher {
	filtered := make([]string, 0, len(names))
	for _, n := range names {
		if strings.Contains(n, SentinelToken) {
			continue
		}
		filtered = append(filtered, n)
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		return len(filtered[i]) > len(filtered[j])
	})

	escaped := make([]string, len(filtered))
	for i, n := range filtered {
		escaped[i] = regexp.QuoteMeta(n)
	}

	pattern := "(?s)^(?P<tag_name>" + strings.Join(escaped, "|") + ")(?P<tag_options>.*)$"
	return &HelperPrefixMatcher{re: regexp.MustCompile(pattern)}
}

// Match attempts to split trimmed into (name, rest) using the longest
// registered helper-name prefix. ok is false when the matcher is nil or
// no registered name prefixes trimmed.
func (m *HelperPrefixMatcher) Match(trimmed string) (name, rest string, ok bool) {
	if m == nil {
		return StringValueEmpty, StringValueEmpty, false
	}
	groups := m.re.FindStringSubmatch(trimmed)
	if groups == nil {
		return StringValueEmpty, StringValueEmpty, false
	}
	nameIdx := m.re.SubexpIndex("tag_name")
	restIdx := m.re.SubexpIndex("tag_options")
	return groups[nameIdx], groups[restIdx], true
}
