package prompt

import (
	"strings"
	"testing"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

func req(from, to string) domain.TranslationRequest {
	return domain.TranslationRequest{
		SourceText:   "Hello there",
		FromLanguage: from,
		ToLanguage:   to,
	}
}

func TestUserPromptDeterministic(t *testing.T) {
	r := req("en", "ja")
	r.Context = "greeting a friend"
	if UserPrompt(r) != UserPrompt(r) {
		t.Fatal("same request produced different prompts")
	}
}

func TestUserPromptContent(t *testing.T) {
	r := req("en", "ja")
	p := UserPrompt(r)
	if !strings.Contains(p, "Hello there") {
		t.Error("prompt missing verbatim source text")
	}
	if !strings.Contains(p, "English") || !strings.Contains(p, "Japanese") {
		t.Error("prompt missing language names")
	}
	if !strings.Contains(p, "explanation must be written in English") {
		t.Error("prompt missing English-explanation reminder")
	}
}

func TestUserPromptContextLine(t *testing.T) {
	r := req("en", "es")
	if strings.Contains(UserPrompt(r), "Context:") {
		t.Error("Context line present without context")
	}
	r.Context = "a formal letter"
	p := UserPrompt(r)
	if !strings.Contains(p, "Context: a formal letter") {
		t.Error("Context line missing")
	}
}

func TestTranscriptionClauseGating(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"auto never", "auto", "ja", false},
		{"same script never", "en", "es", false},
		{"en to ja", "en", "ja", true},
		{"en to zh", "en", "zh", true},
		{"en to ko", "en", "ko", true},
		{"en to ar", "en", "ar", true},
		{"en to ru", "en", "ru", true},
		{"ja to en", "ja", "en", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Contains(UserPrompt(req(tt.from, tt.to)), "transcription")
			if got != tt.want {
				t.Errorf("transcription clause present = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranscriptionSchemeExamples(t *testing.T) {
	tests := []struct {
		to   string
		want string
	}{
		{"ja", "romaji"},
		{"zh", "pinyin"},
		{"ko", "revised romanization"},
		{"ar", "Latin transliteration"},
		{"ru", "Latin transliteration"},
	}
	for _, tt := range tests {
		p := UserPrompt(req("en", tt.to))
		if !strings.Contains(p, tt.want) {
			t.Errorf("en->%s prompt missing %q", tt.to, tt.want)
		}
	}
	// Reverse direction picks the scheme from the non-Latin side.
	if !strings.Contains(UserPrompt(req("ja", "en")), "Latin") {
		t.Error("ja->en prompt missing romanization clause")
	}
}

func TestAutoDetectPrompt(t *testing.T) {
	p := UserPrompt(req("auto", "ja"))
	if !strings.Contains(p, "Detect the source language") {
		t.Error("auto prompt missing detect instruction")
	}
	if !strings.Contains(p, "detectedLanguage") {
		t.Error("auto prompt missing detectedLanguage key request")
	}
}

func TestSystemPromptFixed(t *testing.T) {
	s := SystemPrompt()
	if s != SystemPrompt() {
		t.Fatal("system prompt not stable")
	}
	for _, want := range []string{`"translation"`, `"explanation"`, `"transcription"`, "English", "IPA"} {
		if !strings.Contains(s, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
