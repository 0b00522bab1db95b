package ai

import (
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"fence without newlines", "```{\"a\":1}```", `{"a":1}`},
		{"inner fence untouched", "before ```json\n{}\n``` after", "before ```json\n{}\n``` after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.raw); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeLenient(t *testing.T) {
	var out struct {
		Suggestions []struct {
			ID string `json:"id"`
		} `json:"suggestions"`
	}
	raw := "```json\n{\"suggestions\":[{\"id\":\"sug-1\"}]}\n```"
	if err := DecodeLenient(raw, &out); err != nil {
		t.Fatalf("DecodeLenient: %v", err)
	}
	if len(out.Suggestions) != 1 || out.Suggestions[0].ID != "sug-1" {
		t.Errorf("decoded %+v", out)
	}
}

func TestDecodeLenientErrorCarriesSample(t *testing.T) {
	long := "I am sorry, I cannot produce JSON for that. " + strings.Repeat("x", 200)
	var out map[string]any
	err := DecodeLenient(long, &out)
	if err == nil {
		t.Fatal("expected an error for non-JSON input")
	}
	if !strings.Contains(err.Error(), "I am sorry") {
		t.Error("error should carry a sample of the raw response")
	}
	if strings.Contains(err.Error(), strings.Repeat("x", 150)) {
		t.Error("error sample should be truncated")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate(strings.Repeat("a", 10), 4); got != "aaaa..." {
		t.Errorf("Truncate = %q", got)
	}
}
