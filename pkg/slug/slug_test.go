package slug

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		model   string
		year    int
		version string
		want    string
	}{
		{"internal hyphen collapses", "Honda", "HR-V", 2021, "EXL", "honda-hrv-2021-exl"},
		{"accents folded", "Volvo", "FH 540 Globetrotter São Paulo", 2019, "", "volvo-fh-540-globetrotter-sao-paulo-2019"},
		{"no version", "Mercedes-Benz", "Sprinter 415", 2022, "", "mercedesbenz-sprinter-415-2022"},
		{"special chars stripped", "Scania", "R450 (6x2)", 2020, "A/T", "scania-r450-6x2-2020-at"},
		{"whitespace version ignored", "Iveco", "Daily", 2018, "   ", "iveco-daily-2018"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Generate(tc.brand, tc.model, tc.year, tc.version); got != tc.want {
				t.Fatalf("Generate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerateWithIDRoundTrip(t *testing.T) {
	tests := []struct {
		brand   string
		model   string
		year    int
		version string
	}{
		{"Honda", "HR-V", 2021, "EXL"},
		{"Volkswagen", "Delivery 11.180", 2023, ""},
		{"Ônibus Marcopolo", "Paradiso G7", 2017, "DD"},
	}

	for _, tc := range tests {
		id := uuid.NewString()
		slug := GenerateWithID(id, tc.brand, tc.model, tc.year, tc.version)
		if got := ExtractID(slug); got != id {
			t.Fatalf("ExtractID(%q) = %q, want %q", slug, got, id)
		}
	}
}

func TestExtractIDFallbackHeuristic(t *testing.T) {
	// Without a trailing UUID the legacy heuristic returns the final hyphen
	// token, even when that is just a slug fragment.
	if got := ExtractID("honda-hrv-2021-exl"); got != "exl" {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := ExtractID("nohyphens"); got != "nohyphens" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestExtractIDPrefersUUID(t *testing.T) {
	id := "9b2d1c3e-8f70-4f4e-9a62-1c2d3e4f5a6b"
	if got := ExtractID("honda-hrv-2021-exl-" + id); got != id {
		t.Fatalf("expected trailing UUID, got %q", got)
	}
}

func TestFormatTitle(t *testing.T) {
	if got := FormatTitle("Honda", "HR-V", "EXL"); got != "Honda HR-V EXL" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := FormatTitle("Honda", "HR-V", ""); got != "Honda HR-V" {
		t.Fatalf("unexpected title %q", got)
	}
}
