package contract

import (
	"context"

	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	Update(ctx context.Context, offer *entity.Offer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Offer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
