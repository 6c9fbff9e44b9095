package labels

import (
	"fmt"
	"strings"

	"versemood/internal/textutil"
)

// Language selects one of the two corpus editions.
type Language string

const (
	// LanguageEnglish is the primary edition; labels are stored in this vocabulary.
	LanguageEnglish Language = "en"
	// LanguageSpanish is the secondary edition, labeled by transfer rather than inference.
	LanguageSpanish Language = "es"
)

// ParseLanguage validates a user-supplied language code.
func ParseLanguage(value string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "en", "english":
		return LanguageEnglish, nil
	case "es", "spanish":
		return LanguageSpanish, nil
	default:
		return "", fmt.Errorf("unsupported language %q (expected en or es)", value)
	}
}

// ThemeSeparator joins multi-label theme values in the file format.
const ThemeSeparator = ";"

// DefaultThemeLabels is the candidate label set handed to the zero-shot
// classifier, in the order the themes were curated.
var DefaultThemeLabels = []string{"love", "faith", "hope", "forgiveness", "fear"}

// Emotions is the closed emotion vocabulary, matching the labels the emotion
// classifier can emit plus the translation table.
var Emotions = []string{"joy", "sadness", "anger", "fear", "trust", "surprise", "neutral"}

// emotionES and themeES translate English labels to Spanish for the
// secondary-language file boundary.
var emotionES = map[string]string{
	"joy":      "Alegría",
	"sadness":  "Tristeza",
	"anger":    "Ira",
	"fear":     "Miedo",
	"trust":    "Confianza",
	"surprise": "Sorpresa",
	"neutral":  "Neutral",
}

var themeES = map[string]string{
	"love":        "amor",
	"faith":       "fe",
	"hope":        "esperanza",
	"forgiveness": "perdón",
	"fear":        "miedo",
}

// Inverse indexes keyed by normalized Spanish label, built once.
var (
	emotionEN = invert(emotionES)
	themeEN   = invert(themeES)
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for en, es := range m {
		out[textutil.Normalize(es)] = en
	}
	return out
}

// EmotionToSpanish translates an English emotion label to Spanish. Unknown
// labels (including "" and the "error" sentinel) pass through unchanged.
func EmotionToSpanish(label string) string {
	if es, ok := emotionES[textutil.Normalize(label)]; ok {
		return es
	}
	return strings.TrimSpace(label)
}

// ThemeToSpanish translates a single English theme label to Spanish, passing
// unknown labels through unchanged.
func ThemeToSpanish(label string) string {
	if es, ok := themeES[textutil.Normalize(label)]; ok {
		return es
	}
	return strings.TrimSpace(label)
}

// CanonicalEmotion maps an emotion label in either vocabulary to the English
// vocabulary the corpus stores. Already-English and unknown labels pass through.
func CanonicalEmotion(label string) string {
	if en, ok := emotionEN[textutil.Normalize(label)]; ok {
		return en
	}
	return strings.TrimSpace(label)
}

// CanonicalTheme maps a theme label in either vocabulary to the English vocabulary.
func CanonicalTheme(label string) string {
	if en, ok := themeEN[textutil.Normalize(label)]; ok {
		return en
	}
	return strings.TrimSpace(label)
}

// JoinThemes serializes theme labels for the file format. Order is preserved;
// callers hand labels in descending classifier confidence.
func JoinThemes(themes []string) string {
	return strings.Join(themes, ThemeSeparator)
}

// SplitThemes parses a serialized theme value back into its labels, preserving
// order and dropping empty segments.
func SplitThemes(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ThemeSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// TranslateThemes translates a serialized theme value label by label via the
// supplied per-label translation, keeping the original ordering.
func TranslateThemes(value string, translate func(string) string) string {
	parts := SplitThemes(value)
	if len(parts) == 0 {
		return ""
	}
	for i, part := range parts {
		parts[i] = translate(part)
	}
	return JoinThemes(parts)
}
