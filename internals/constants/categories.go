package constants

import "strings"

// Canonical equip/shop categories.
const (
	CategoryHat        = "hat"
	CategoryAccessory  = "accessory"
	CategoryBackground = "background"
	CategorySpecial    = "special"
)

// canonical -> localized
var categoryLocalized = map[string]string{
	CategoryHat:        "sombrero",
	CategoryAccessory:  "accesorio",
	CategoryBackground: "fondo",
	CategorySpecial:    "especiales",
}

// localized -> canonical
var categoryCanonical = invert(categoryLocalized)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// CategoryKeys resolves a category given in either vocabulary (case-insensitive, trimmed)
// to its canonical and localized keys. ok is false for unknown categories.
func CategoryKeys(category string) (canonical, localized string, ok bool) {
	c := strings.ToLower(strings.TrimSpace(category))
	if l, found := categoryLocalized[c]; found {
		return c, l, true
	}
	if en, found := categoryCanonical[c]; found {
		return en, c, true
	}
	return "", "", false
}

func IsCanonicalCategory(category string) bool {
	_, ok := categoryLocalized[category]
	return ok
}
