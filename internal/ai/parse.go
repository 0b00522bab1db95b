package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fenceRe matches a whole response wrapped in a markdown code fence, with or
// without a language tag. Models emit these even when told not to.
var fenceRe = regexp.MustCompile("(?s)^```(\\w*)?\\s*\n?(.*?)\n?\\s*```$")

// StripFences removes a surrounding markdown code fence from a model
// response, returning the inner payload trimmed. Input without a fence is
// returned trimmed as-is.
func StripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[2])
	}
	return trimmed
}

// DecodeLenient strips code fences from raw and unmarshals the payload into
// v. On failure the error carries a truncated sample of the raw response for
// log forensics.
func DecodeLenient(raw string, v any) error {
	payload := StripFences(raw)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("failed to parse model response (raw: %q): %w", Truncate(raw, 100), err)
	}
	return nil
}

// Truncate shortens s to at most n characters, marking the cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
