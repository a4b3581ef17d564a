package unitofwork

import (
	"context"

	"landivo-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PropertyRepository() contract.PropertyRepository
	DeletionRequestRepository() contract.DeletionRequestRepository
	BuyerRepository() contract.BuyerRepository
	OfferRepository() contract.OfferRepository
	QualificationRepository() contract.QualificationRepository
	EmailListRepository() contract.EmailListRepository
	CampaignRepository() contract.CampaignRepository
	DealRepository() contract.DealRepository
	SettingsRepository() contract.SettingsRepository
}
