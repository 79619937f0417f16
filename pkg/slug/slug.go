// Package slug derives SEO-friendly listing slugs from vehicle attributes and
// recovers the durable identifier appended to them.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// trailing canonical UUID, e.g. "...-9b2d1c3e-8f70-4f4e-9a62-1c2d3e4f5a6b"
	trailingUUIDPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Generate builds the display slug for a vehicle: lowercase, accents folded,
// special characters stripped (internal hyphens included), tokens joined by
// single hyphens. Generate("Honda", "HR-V", 2021, "EXL") == "honda-hrv-2021-exl".
func Generate(brand, model string, yearModel int, version string) string {
	raw := fmt.Sprintf("%s %s %d", brand, model, yearModel)
	if strings.TrimSpace(version) != "" {
		raw += " " + version
	}
	return normalize(raw)
}

// GenerateWithID appends the canonical identifier so the slug stays globally
// unique and recoverable.
func GenerateWithID(id, brand, model string, yearModel int, version string) string {
	base := Generate(brand, model, yearModel, version)
	if base == "" {
		return id
	}
	return base + "-" + id
}

// ExtractID recovers the identifier from a slug. A canonical UUID at the end
// wins; otherwise the token after the final hyphen is returned. The fallback is
// a legacy heuristic and can yield a truncated value for malformed slugs.
func ExtractID(value string) string {
	if match := trailingUUIDPattern.FindString(value); match != "" {
		return match
	}
	if idx := strings.LastIndex(value, "-"); idx >= 0 {
		return value[idx+1:]
	}
	return value
}

// FormatTitle joins the attributes with spaces for human display. No
// normalization is applied.
func FormatTitle(brand, model, version string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{brand, model, version} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func normalize(raw string) string {
	folded, _, err := transform.String(accentFolder, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// everything else, hyphens included, is stripped
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
