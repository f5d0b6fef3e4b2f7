package openrouter

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

func strptr(s string) *string { return &s }

func TestParseContentPlainJSON(t *testing.T) {
	got := ParseContent(`{"translation":"こんにちは","explanation":"A casual greeting.","transcription":"konnichiwa"}`)
	assert.Equal(t, domain.TranslationResponse{
		Translation:   "こんにちは",
		Explanation:   strptr("A casual greeting."),
		Transcription: strptr("konnichiwa"),
	}, got)
}

func TestParseContentFenceVariants(t *testing.T) {
	want := ParseContent(`{"translation":"hola"}`)
	tests := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n{\"translation\":\"hola\"}\n```"},
		{"bare fence", "```\n{\"translation\":\"hola\"}\n```"},
		{"fence without newline", "```json{\"translation\":\"hola\"}```"},
		{"surrounding whitespace", "  \n```json\n{\"translation\":\"hola\"}\n```  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, want, ParseContent(tt.input))
		})
	}
}

// A non-JSON reply becomes the translation verbatim rather than an error.
func TestParseContentPlainTextFallback(t *testing.T) {
	raw := "Hola, ¿cómo estás?"
	got := ParseContent(raw)
	assert.Equal(t, raw, got.Translation)
	assert.Equal(t, (*string)(nil), got.Explanation)
	assert.Equal(t, (*string)(nil), got.Transcription)
	assert.Equal(t, (*string)(nil), got.DetectedLanguage)
}

func TestParseContentMissingTranslation(t *testing.T) {
	got := ParseContent(`{"explanation":"no translation here"}`)
	assert.Equal(t, "", got.Translation)
	assert.Equal(t, strptr("no translation here"), got.Explanation)
}

// JSON null collapses to absent.
func TestParseContentNullOptionals(t *testing.T) {
	got := ParseContent(`{"translation":"hi","explanation":null,"transcription":null}`)
	assert.Equal(t, "hi", got.Translation)
	assert.Equal(t, (*string)(nil), got.Explanation)
	assert.Equal(t, (*string)(nil), got.Transcription)
}

func TestParseContentDetectedLanguage(t *testing.T) {
	got := ParseContent(`{"translation":"Hello","detectedLanguage":"ja"}`)
	assert.Equal(t, strptr("ja"), got.DetectedLanguage)
}
