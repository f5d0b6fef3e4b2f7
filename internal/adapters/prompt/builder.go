// Package prompt renders the system and user instructions for a translation
// call. Both builders are pure: the same request always yields the same
// strings.
package prompt

import (
	"fmt"
	"strings"

	"github.com/quasarbright/clanker-translate/internal/domain"
	"github.com/quasarbright/clanker-translate/internal/langs"
)

const systemPrompt = `You are an expert translator. Respond with only a JSON object containing the keys "translation", "explanation" and "transcription". No other text, no code fences.

Rules:
1. "translation" is the text translated into the target language.
2. "explanation" is a concise note about the translation itself (word choices, register, grammar). Always write the explanation in English. Do not mention transcription or romanization in it.
3. When asked for "transcription", romanize the translated (target-language) text using the standard scheme: romaji for Japanese, pinyin with tone marks for Chinese, revised romanization for Korean, plain Latin transliteration for Arabic or Russian. Never use IPA symbols.
4. Keep explanations short and focused on the translation.`

// SystemPrompt returns the fixed system instruction sent with every request.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt renders the per-request instruction: the translate directive with
// the source text verbatim, an optional Context line, a transcription clause
// when the language pair crosses writing systems, and the closing reminder
// that the explanation must be in English.
func UserPrompt(req domain.TranslationRequest) string {
	var b strings.Builder
	if req.FromLanguage == langs.Auto {
		fmt.Fprintf(&b, "Detect the source language and translate the following text to %s. Include the detected language code in a \"detectedLanguage\" key.\n\n%s\n", langs.Name(req.ToLanguage), req.SourceText)
	} else {
		fmt.Fprintf(&b, "Translate the following text from %s to %s.\n\n%s\n", langs.Name(req.FromLanguage), langs.Name(req.ToLanguage), req.SourceText)
	}
	if strings.TrimSpace(req.Context) != "" {
		fmt.Fprintf(&b, "\nContext: %s\n", req.Context)
	}
	if langs.NeedsTranscription(req.FromLanguage, req.ToLanguage) {
		fmt.Fprintf(&b, "\nAlso provide a \"transcription\": the translated text romanized with Latin letters only, %s\n", transcriptionExample(req))
	}
	b.WriteString("\nRemember: the explanation must be written in English.")
	return b.String()
}

// transcriptionExample picks a romanization scheme with a worked example. The
// scheme follows whichever side of the pair is non-Latin, preferring the
// target since that is the text being romanized.
func transcriptionExample(req domain.TranslationRequest) string {
	script, ok := langs.ScriptOf(req.ToLanguage)
	if !ok || script == langs.Latin {
		script, _ = langs.ScriptOf(req.FromLanguage)
	}
	switch script {
	case langs.Japanese:
		return `using romaji (e.g. こんにちは -> "konnichiwa").`
	case langs.Chinese:
		return `using pinyin with tone marks (e.g. 你好 -> "nǐ hǎo").`
	case langs.Korean:
		return `using revised romanization (e.g. 안녕하세요 -> "annyeonghaseyo").`
	case langs.Arabic:
		return `as a plain Latin transliteration (e.g. مرحبا -> "marhaban").`
	case langs.Cyrillic:
		return `as a plain Latin transliteration (e.g. привет -> "privet").`
	default:
		return `as a plain Latin transliteration.`
	}
}
