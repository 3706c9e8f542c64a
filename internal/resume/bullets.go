package resume

import "strings"

// Bullets derives display bullets from a project description by splitting on
// the "." delimiter, discarding empty fragments, and re-appending a trailing
// period to each. This is a deliberate heuristic: periods inside
// abbreviations or decimal numbers will split mid-sentence and are not
// special-cased.
func Bullets(description string) []string {
	out := []string{}
	for _, frag := range strings.Split(description, ".") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		out = append(out, frag+".")
	}
	return out
}

// ReplaceBullet rebuilds a description with bullet index i replaced by the
// edited value. The fragments are rejoined with ". " and the result is
// normalized to end in a single trailing period. Out-of-range indices leave
// the description unchanged.
func ReplaceBullet(description string, i int, value string) string {
	frags := []string{}
	for _, frag := range strings.Split(description, ".") {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		frags = append(frags, strings.TrimSpace(frag))
	}
	if i < 0 || i >= len(frags) {
		return description
	}
	frags[i] = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "."))
	joined := strings.Join(frags, ". ")
	return strings.TrimRight(joined, ". ") + "."
}
