package contract

import (
	"context"

	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmailListRepository interface {
	Create(ctx context.Context, list *entity.EmailList) error
	Update(ctx context.Context, list *entity.EmailList) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailList, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailList, error)

	// Membership. AddMembers skips pairs that already exist.
	AddMembers(ctx context.Context, listId uuid.UUID, buyerIds []uuid.UUID) (int64, error)
	RemoveMember(ctx context.Context, listId uuid.UUID, buyerId uuid.UUID) error
	CountMembers(ctx context.Context, listId uuid.UUID) (int64, error)
	FindMemberBuyerIds(ctx context.Context, listId uuid.UUID) ([]uuid.UUID, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error)

	UpdateProgress(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, sentCount, errorCount int) error
}
