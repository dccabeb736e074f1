// Package countries maps entity codes to display names.
//
// Codes are mostly ISO 3166-1 alpha-2 country codes, plus synthetic
// codes for blocs that appear as parties in the catalogue ("EU").
// The table is fixed at build time — resolution is a pure lookup and
// never fails: unknown codes resolve to themselves.
package countries

import "strings"

// displayNames is the static code → display name table. It covers the
// LATAM region plus every extra-regional partner referenced by the
// seeded catalogue.
var displayNames = map[string]string{
	"AR": "Argentina",
	"BO": "Bolivia",
	"BR": "Brazil",
	"CL": "Chile",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"DO": "Dominican Republic",
	"EC": "Ecuador",
	"GT": "Guatemala",
	"HN": "Honduras",
	"MX": "Mexico",
	"NI": "Nicaragua",
	"PA": "Panama",
	"PE": "Peru",
	"PY": "Paraguay",
	"SV": "El Salvador",
	"UY": "Uruguay",
	"VE": "Venezuela",

	"EU": "European Union",
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"SG": "Singapore",
	"NZ": "New Zealand",
	"KR": "South Korea",
	"JP": "Japan",
	"CN": "China",
}

// Normalize canonicalizes a raw entity code: trimmed and uppercased.
// All lookups operate on normalized codes; echoed response fields carry
// the normalized form, never the caller's raw input.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DisplayName resolves a code to its human-readable name. Resolution is
// non-authoritative: an unknown code falls back to the code itself so a
// query is never blocked by a naming gap.
func DisplayName(code string) string {
	if name, ok := displayNames[Normalize(code)]; ok {
		return name
	}
	return Normalize(code)
}

// Known reports whether the code is in the display-name table.
func Known(code string) bool {
	_, ok := displayNames[Normalize(code)]
	return ok
}
