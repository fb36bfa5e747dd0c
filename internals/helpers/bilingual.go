package helper

import "strings"

// Bilingual is a user-facing string carried in both English and Tamil.
// Every renderer and DTO resolves it through Resolve so the fallback chain
// (requested language -> English -> empty) lives in exactly one place.
type Bilingual struct {
	En string `json:"en"`
	Ta string `json:"ta"`
}

const (
	LangEnglish = "en"
	LangTamil   = "ta"
)

// Resolve picks the display string for lang: field[lang] -> field.en -> "".
func (b Bilingual) Resolve(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), LangTamil) && b.Ta != "" {
		return b.Ta
	}
	if b.En != "" {
		return b.En
	}
	return ""
}

// IsZero reports whether neither rendition is present.
func (b Bilingual) IsZero() bool {
	return b.En == "" && b.Ta == ""
}

// ResolveField applies the same fallback chain to a decoded JSON object of
// the shape {"en": ..., "ta": ...}, as stored inside CMS component payloads.
func ResolveField(field map[string]any, lang string) string {
	if field == nil {
		return ""
	}
	b := Bilingual{}
	if v, ok := field[LangEnglish].(string); ok {
		b.En = v
	}
	if v, ok := field[LangTamil].(string); ok {
		b.Ta = v
	}
	return b.Resolve(lang)
}
