package enums

import "fmt"

// DiagnosticRating is the 1..5 condition scale behind the diagnostic slider on
// the listing form.
type DiagnosticRating int

const (
	DiagnosticRatingVeryPoor  DiagnosticRating = 1
	DiagnosticRatingPoor      DiagnosticRating = 2
	DiagnosticRatingFair      DiagnosticRating = 3
	DiagnosticRatingGood      DiagnosticRating = 4
	DiagnosticRatingExcellent DiagnosticRating = 5
)

// DiagnosticRatingOption is one selectable entry with its pt-BR label.
type DiagnosticRatingOption struct {
	Value DiagnosticRating `json:"value"`
	Label string           `json:"label"`
}

var diagnosticRatingOptions = []DiagnosticRatingOption{
	{Value: DiagnosticRatingVeryPoor, Label: "Muito ruim"},
	{Value: DiagnosticRatingPoor, Label: "Ruim"},
	{Value: DiagnosticRatingFair, Label: "Regular"},
	{Value: DiagnosticRatingGood, Label: "Bom"},
	{Value: DiagnosticRatingExcellent, Label: "Excelente"},
}

// DiagnosticRatingOptions returns the full slider catalog in ascending order.
func DiagnosticRatingOptions() []DiagnosticRatingOption {
	options := make([]DiagnosticRatingOption, len(diagnosticRatingOptions))
	copy(options, diagnosticRatingOptions)
	return options
}

// IsValid reports whether the rating is inside the 1..5 scale.
func (d DiagnosticRating) IsValid() bool {
	return d >= DiagnosticRatingVeryPoor && d <= DiagnosticRatingExcellent
}

// ParseDiagnosticRating converts the raw value to DiagnosticRating.
func ParseDiagnosticRating(value int) (DiagnosticRating, error) {
	rating := DiagnosticRating(value)
	if !rating.IsValid() {
		return 0, fmt.Errorf("invalid diagnostic rating %d", value)
	}
	return rating, nil
}
