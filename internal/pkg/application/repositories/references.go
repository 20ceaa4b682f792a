package repositories

import (
	"context"
	"fmt"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

// References are literature sources attached to a commodity
type References struct {
	Handling[types.Reference]
}

func NewReferences(exec database.Executor) *References {
	return &References{
		Handling: Handling[types.Reference]{exec: exec, def: referenceTable},
	}
}

func (r *References) Create(ctx context.Context, commodityID, source string) (types.Reference, error) {
	if source == "" {
		return types.Reference{}, phErrors.NewInvalidArgumentError("source is required")
	}
	return r.Handling.Create(ctx, commodityID, types.Reference{Source: source})
}

// RemoveByCommodity deletes every reference of a commodity
func (r *References) RemoveByCommodity(ctx context.Context, commodityID string) (int, error) {
	rows, err := r.exec.Query(ctx, "DELETE FROM refs WHERE commodity_id = $1 RETURNING id", commodityID)
	if err != nil {
		return 0, writeError(err, fmt.Sprintf("could not find references to delete for commodity %s", commodityID))
	}

	if len(rows) == 0 {
		return 0, phErrors.NewNotFoundError(fmt.Sprintf("could not find references to delete for commodity %s", commodityID))
	}

	return len(rows), nil
}
