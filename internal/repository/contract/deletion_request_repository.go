package contract

import (
	"context"
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeletionRequestRepository interface {
	Create(ctx context.Context, request *entity.DeletionRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DeletionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeletionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// TransitionStatus performs a conditional status update: the row moves
	// from `from` to `to` only if it is still in `from` when the UPDATE
	// lands. Returns true when this call won the transition, false when a
	// concurrent caller got there first.
	TransitionStatus(ctx context.Context, token string, from, to entity.DeletionStatus, resolvedAt *time.Time) (bool, error)

	// DeletePendingByPropertyId removes all PENDING requests for a
	// property except the one identified by keepId. Used when an approval
	// resolves sibling requests for the same listing.
	DeletePendingByPropertyId(ctx context.Context, propertyId uuid.UUID, keepId uuid.UUID) (int64, error)
}
