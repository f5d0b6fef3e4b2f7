// Package langs holds the static language tables: display names, writing
// systems, and the gating rule for when a romanized transcription of the
// translated text is worth asking for.
package langs

// Script is a writing-system family.
type Script string

const (
	Latin    Script = "latin"
	Cyrillic Script = "cyrillic"
	Arabic   Script = "arabic"
	Japanese Script = "japanese"
	Chinese  Script = "chinese"
	Korean   Script = "korean"
)

// Auto is the sentinel source-language code for model-side detection.
const Auto = "auto"

type language struct {
	Name   string
	Script Script
}

var table = map[string]language{
	"en": {"English", Latin},
	"es": {"Spanish", Latin},
	"fr": {"French", Latin},
	"de": {"German", Latin},
	"it": {"Italian", Latin},
	"pt": {"Portuguese", Latin},
	"nl": {"Dutch", Latin},
	"pl": {"Polish", Latin},
	"sv": {"Swedish", Latin},
	"tr": {"Turkish", Latin},
	"vi": {"Vietnamese", Latin},
	"id": {"Indonesian", Latin},
	"ru": {"Russian", Cyrillic},
	"uk": {"Ukrainian", Cyrillic},
	"bg": {"Bulgarian", Cyrillic},
	"sr": {"Serbian", Cyrillic},
	"ar": {"Arabic", Arabic},
	"fa": {"Persian", Arabic},
	"ur": {"Urdu", Arabic},
	"ja": {"Japanese", Japanese},
	"zh": {"Chinese", Chinese},
	"ko": {"Korean", Korean},
}

// Codes returns every known language code, unordered.
func Codes() []string {
	out := make([]string, 0, len(table))
	for c := range table {
		out = append(out, c)
	}
	return out
}

// Name returns the display name for a code, or the code itself when unknown.
func Name(code string) string {
	if l, ok := table[code]; ok {
		return l.Name
	}
	return code
}

// ScriptOf returns the writing system of a language code.
func ScriptOf(code string) (Script, bool) {
	l, ok := table[code]
	return l.Script, ok
}

// NeedsTranscription reports whether a translation from one language to the
// other crosses writing systems, which is when a Latin romanization of the
// translated text is useful. False when the source is "auto" (the script of
// an undetected language cannot be compared) or when either code is unknown.
func NeedsTranscription(from, to string) bool {
	if from == Auto {
		return false
	}
	fs, ok := ScriptOf(from)
	if !ok {
		return false
	}
	ts, ok := ScriptOf(to)
	if !ok {
		return false
	}
	return fs != ts
}
