package services

import (
	"iss-display-gadget/internal/domain"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLabelLen is how many characters fit on one display line.
const DefaultLabelLen = 13

// ResolveLabel picks the country and city lines for an address.
//
// A missing country means open water. On land the city falls back to the
// suburb, then the state, then UnknownCity. Labels are folded to ASCII and
// cut to maxLen runes; maxLen <= 0 disables the cut.
func ResolveLabel(addr domain.Address, maxLen int) domain.LocationLabel {
	label := domain.LocationLabel{
		Country: domain.OceanCountry,
		City:    domain.UnknownCity,
	}

	if c := clean(addr.Country, maxLen); c != "" {
		label.Country = c
	}

	if label.IsOcean() {
		return label
	}

	for _, candidate := range []string{addr.City, addr.Suburb, addr.State} {
		if c := clean(candidate, maxLen); c != "" {
			label.City = c
			break
		}
	}

	return label
}

func clean(s string, maxLen int) string {
	s = strings.TrimSpace(foldASCII(s))
	if maxLen > 0 {
		r := []rune(s)
		if len(r) > maxLen {
			s = strings.TrimSpace(string(r[:maxLen]))
		}
	}
	return s
}

// foldASCII strips combining marks ("Zürich" -> "Zurich") so names fit the
// display's ASCII bitmap font.
func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
