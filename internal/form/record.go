package form

import (
	"fmt"

	"github.com/concave-dev/labform/internal/validate"
)

// GridParams is the typed form of lab 5's inputs: N space steps, K time
// steps and the time horizon T. Values stay strings because the solver
// receives them as strings and converts them itself.
type GridParams struct {
	N string `json:"N" validate:"required,numeric"`
	K string `json:"K" validate:"required,numeric"`
	T string `json:"T" validate:"required,numeric"`
}

// Validate checks that every parameter is present and numeric.
func (g GridParams) Validate() error {
	if err := validate.ValidateStruct(g); err != nil {
		return fmt.Errorf("invalid grid parameters: %w", err)
	}
	return nil
}

// Fields returns the parameters in the order the lab 5 page lists them.
func (g GridParams) Fields() []Field {
	return []Field{
		{Label: "N", Value: g.N},
		{Label: "K", Value: g.K},
		{Label: "T", Value: g.T},
	}
}
