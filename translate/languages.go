package translate

import "sort"

// languages lists the target languages offered by the translator UI. The
// model accepts any language name; this is only the dropdown inventory.
var languages = []string{
	"English",
	"Urdu",
	"German",
	"French",
	"Spanish",
	"Arabic",
	"Hindi",
	"Chinese",
	"Russian",
	"Turkish",
	"Japanese",
	"Italian",
	"Portuguese",
	"Korean",
	"Vietnamese",
	"Dutch",
	"Swedish",
}

// DefaultLanguage is preselected in the UI when available.
const DefaultLanguage = "English"

// Languages returns the supported target languages sorted alphabetically.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	sort.Strings(out)
	return out
}

// IsSupported reports whether the given language is in the dropdown
// inventory.
func IsSupported(lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
