package models

const (
	LanguageEN = "en"
	LanguageNL = "nl"
)

// IsSupportedLanguage reports whether lang is one of the display languages
// the catalog carries text for.
func IsSupportedLanguage(lang string) bool {
	return lang == LanguageEN || lang == LanguageNL
}

// LocalizedText holds one display string per supported language. The language
// only selects which field a renderer picks; it never affects scoring or
// progression.
type LocalizedText struct {
	EN string `bson:"en" json:"en"`
	NL string `bson:"nl" json:"nl"`
}

// Get returns the string for the given language, falling back to English
// when the translation is missing.
func (t LocalizedText) Get(lang string) string {
	if lang == LanguageNL && t.NL != "" {
		return t.NL
	}
	return t.EN
}

// LocalizedList holds one display string list per supported language.
type LocalizedList struct {
	EN []string `bson:"en" json:"en"`
	NL []string `bson:"nl" json:"nl"`
}

// Get returns the list for the given language, falling back to English
// when the translation is missing.
func (l LocalizedList) Get(lang string) []string {
	if lang == LanguageNL && len(l.NL) > 0 {
		return l.NL
	}
	return l.EN
}
