package ai

import "strings"

const (
	fenceOpen  = "```json"
	fenceClose = "\n```"
)

// NormalizePayload strips the provider's markdown code fence wrapping from a
// candidate text and trims surrounding whitespace. Fences are stripped until
// none remain, so the returned string is a fixed point: normalizing an already
// clean payload is a no-op. It is a purely textual transform — it does not
// care whether the result is valid JSON.
func NormalizePayload(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		stripped := s
		if rest, ok := strings.CutPrefix(stripped, fenceOpen); ok {
			stripped = strings.TrimPrefix(rest, "\n")
		}
		if rest, ok := strings.CutSuffix(stripped, fenceClose); ok {
			stripped = rest
		}
		stripped = strings.TrimSpace(stripped)
		if stripped == s {
			return s
		}
		s = stripped
	}
}
