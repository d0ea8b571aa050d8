package middleware

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Struct mirroring the shape of query options built from URL parameters.
type listQuery struct {
	MinPrice *float64 `validate:"omitempty,gte=0"`
	MaxPrice *float64 `validate:"omitempty,gte=0"`
	Limit    int      `validate:"omitempty,gte=0"`
}

func TestProperty_NonNegativePricesPassValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-negative price bounds pass validation", prop.ForAll(
		func(minPrice float64, maxPrice float64) bool {
			q := listQuery{MinPrice: &minPrice, MaxPrice: &maxPrice}
			return ValidateRequest(q) == nil
		},
		gen.Float64Range(0, 1e9),
		gen.Float64Range(0, 1e9),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_NegativePricesAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("negative price bounds fail validation with a formatted error", prop.ForAll(
		func(minPrice float64) bool {
			q := listQuery{MinPrice: &minPrice}

			err := ValidateRequest(q)
			if err == nil {
				return false
			}

			formatted := FormatValidationErrors(err)
			if len(formatted) != 1 {
				return false
			}
			return formatted[0].Field == "MinPrice" && formatted[0].Message != ""
		},
		gen.Float64Range(-1e9, -0.01),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidateRequestAbsentFieldsAreSkipped(t *testing.T) {
	// nil pointers mean "not supplied" and must not trigger gte checks
	if err := ValidateRequest(listQuery{}); err != nil {
		t.Fatalf("empty query should pass validation: %v", err)
	}
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	formatted := FormatValidationErrors(errNotValidation{})
	if len(formatted) != 0 {
		t.Fatalf("expected no formatted errors, got %d", len(formatted))
	}
}

type errNotValidation struct{}

func (errNotValidation) Error() string { return "not a validation error" }
