package contract

import (
	"context"

	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"
)

type QualificationRepository interface {
	Create(ctx context.Context, qualification *entity.Qualification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Qualification, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Qualification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
