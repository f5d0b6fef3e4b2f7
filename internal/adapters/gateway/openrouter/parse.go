package openrouter

import (
	"encoding/json"
	"strings"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

// ParseContent turns the model's raw message content into a response value.
// Models routinely wrap the JSON in a code fence despite instructions, so the
// fence is stripped first. When the remainder is not valid JSON the entire
// original content becomes the translation verbatim: a plain-text reply is
// still a usable result, not an error. Never fails.
func ParseContent(raw string) domain.TranslationResponse {
	s := stripFence(strings.TrimSpace(raw))
	var p domain.TranslationResponse
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return domain.TranslationResponse{Translation: raw}
	}
	return p
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
