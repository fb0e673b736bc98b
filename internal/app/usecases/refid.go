package usecases

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// refIDSuffixLen keeps ref ids short while telling apart plans that share a
// display name within one product. Collisions among near-identical source ids
// are accepted.
const refIDSuffixLen = 6

// composeRefID derives the stable identity key that matches source and target
// entities across runs. Same name and id always yield the same ref id.
func composeRefID(name, sourceID string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), " - ", " ")
	normalized = whitespaceRun.ReplaceAllString(normalized, "_")
	normalized = strings.ToLower(normalized)

	suffix := sourceID
	if len(suffix) > refIDSuffixLen {
		suffix = suffix[len(suffix)-refIDSuffixLen:]
	}
	return normalized + "_" + suffix
}
