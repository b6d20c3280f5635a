// Package progress derives completion scoring from the brief and the active
// role's required-field set. Both functions are pure: nothing is cached, so
// the score can never drift from the document's true contents.
package progress

import (
	"math"

	"github.com/averyhale/briefer/internal/domain"
)

// Percentage returns the 0-100 completion score: the rounded share of
// required fields that are present. With no required fields the document is
// complete by definition.
func Percentage(b *domain.Brief, required []domain.Field) int {
	if len(required) == 0 {
		return 100
	}
	present := 0
	for _, f := range required {
		if domain.Present(b, f) {
			present++
		}
	}
	return int(math.Round(100 * float64(present) / float64(len(required))))
}

// Missing returns the required fields that are still empty, in the order the
// role declares them.
func Missing(b *domain.Brief, required []domain.Field) []domain.Field {
	var missing []domain.Field
	for _, f := range required {
		if !domain.Present(b, f) {
			missing = append(missing, f)
		}
	}
	return missing
}
