package models

// LangNameMap maps supported prompt language codes to display names.
var LangNameMap = map[string]string{
	"en": "English",
	"tr": "Turkish (Türkçe)",
}

// DefaultLanguage is used when no supported language can be matched.
const DefaultLanguage = "en"

// SupportedLanguages returns the prompt language codes in preference order.
func SupportedLanguages() []string {
	return []string{"en", "tr"}
}

// GetLanguageName returns the display name for a code.
// Returns "English" if the code is not found.
func GetLanguageName(code string) string {
	if name, ok := LangNameMap[code]; ok {
		return name
	}
	return LangNameMap[DefaultLanguage]
}
