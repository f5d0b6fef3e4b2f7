package domain

// TranslationRequest carries everything one translate call needs. Callers own
// the value and must not mutate it while a call is in flight. SourceText is
// assumed non-empty after trimming; the pipeline does not re-validate it.
type TranslationRequest struct {
	APIKey       string
	Model        string
	SourceText   string
	FromLanguage string // ISO-ish code or "auto"
	ToLanguage   string // ISO-ish code, never "auto"
	Context      string // optional free-text hint, empty means absent
}

// TranslationResponse is the structured result of one translate call.
// Optional fields are nil when the model omitted them, so the frontend can
// tell "no explanation" apart from an empty one.
type TranslationResponse struct {
	Translation      string  `json:"translation"`
	Explanation      *string `json:"explanation,omitempty"`
	Transcription    *string `json:"transcription,omitempty"`
	DetectedLanguage *string `json:"detectedLanguage,omitempty"`
}

// ModelInfo is one entry of the gateway's model catalog.
type ModelInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ContextTokens int    `json:"context_tokens,omitempty"`
}
