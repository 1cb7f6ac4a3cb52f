package pipeline

import "strings"

// Section header prefixes recognized in raw responses. Matching is a strict
// literal prefix after trimming leading whitespace; this is the versioned
// contract with the generation service's output format.
var titleHeaders = [...]struct {
	slot   int
	prefix string
}{
	{1, "Title 1:"},
	{2, "Title 2:"},
	{3, "Title 3:"},
	{4, "Title 4:"},
}

const descriptionHeader = "Description:"

// ParseResponse extracts title slots and the description from raw response
// text. A line opens at most one section; titles are single lines taken from
// the remainder after the colon; description lines accumulate until the next
// header or end of input. Description bullets written as "- " are rewritten
// to "* ", and blank description lines are dropped. Missing headers yield an
// empty map and empty description; the parser never fails.
func ParseResponse(raw string) (map[int]string, string) {
	titles := make(map[int]string)
	var descLines []string
	inDescription := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		matched := false
		for _, h := range titleHeaders {
			if strings.HasPrefix(trimmed, h.prefix) {
				titles[h.slot] = strings.TrimSpace(trimmed[len(h.prefix):])
				inDescription = false
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if strings.HasPrefix(trimmed, descriptionHeader) {
			inDescription = true
			continue
		}
		if inDescription && trimmed != "" {
			if strings.HasPrefix(trimmed, "- ") {
				trimmed = "* " + trimmed[len("- "):]
			}
			descLines = append(descLines, trimmed)
		}
	}

	return titles, strings.Join(descLines, "\n")
}
