package ai

import (
	"strings"
	"testing"
)

func TestParseTitlesResponse(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		response := `{"titles": [{"title": "A", "reasoning": "works"}, {"title": "B", "reasoning": "also"}]}`

		titles, err := ParseTitlesResponse(response)
		if err != nil {
			t.Fatalf("ParseTitlesResponse failed: %v", err)
		}
		if len(titles) != 2 {
			t.Fatalf("got %d titles, want 2", len(titles))
		}
		if titles[0].Title != "A" || titles[0].Reasoning != "works" {
			t.Errorf("first title = %+v", titles[0])
		}
	})

	t.Run("JSONWrappedInProse", func(t *testing.T) {
		response := "Sure! Here are my suggestions:\n```json\n" +
			`{"titles": [{"title": "Wrapped", "reasoning": "extracted"}]}` +
			"\n```\nLet me know if you want more."

		titles, err := ParseTitlesResponse(response)
		if err != nil {
			t.Fatalf("ParseTitlesResponse failed: %v", err)
		}
		if len(titles) != 1 || titles[0].Title != "Wrapped" {
			t.Errorf("titles = %+v", titles)
		}
	})

	t.Run("NoBraces", func(t *testing.T) {
		if _, err := ParseTitlesResponse("no structured output here"); err == nil {
			t.Error("expected error for response without JSON")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		if _, err := ParseTitlesResponse(`{"titles": [{"title": }`); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("EmptyTitlesArray", func(t *testing.T) {
		if _, err := ParseTitlesResponse(`{"titles": []}`); err == nil {
			t.Error("expected error for empty titles array")
		}
	})

	t.Run("TruncatesToFive", func(t *testing.T) {
		var entries []string
		for i := 0; i < 7; i++ {
			entries = append(entries, `{"title": "t", "reasoning": "r"}`)
		}
		response := `{"titles": [` + strings.Join(entries, ",") + `]}`

		titles, err := ParseTitlesResponse(response)
		if err != nil {
			t.Fatalf("ParseTitlesResponse failed: %v", err)
		}
		if len(titles) != 5 {
			t.Errorf("got %d titles, want 5", len(titles))
		}
	})
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Bare object", `{"a": 1}`, `{"a": 1}`, true},
		{"Surrounded by prose", `before {"a": 1} after`, `{"a": 1}`, true},
		{"First to last brace", `x {"a": {"b": 2}} y`, `{"a": {"b": 2}}`, true},
		{"No opening brace", `a} b`, "", false},
		{"No closing brace", `a {b`, "", false},
		{"Closing before opening", `} {`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("extractJSON = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("the analysis brief")

	if !strings.Contains(prompt, "the analysis brief") {
		t.Error("prompt does not embed the brief")
	}
	if !strings.Contains(prompt, `"titles"`) {
		t.Error("prompt does not request the titles JSON shape")
	}
}
