package ports

import (
	"context"

	"github.com/randomtoy/natal-go/internal/domain"
)

// InterpretInput holds the placements an interpretation is composed from.
type InterpretInput struct {
	Bodies    []domain.BodyPlacement
	Ascendant domain.ZodiacPlacement
	Aspects   []domain.AspectRecord
}

// Interpreter turns chart placements into a textual reading.
type Interpreter interface {
	Interpret(ctx context.Context, in InterpretInput) (domain.Interpretation, error)
}
