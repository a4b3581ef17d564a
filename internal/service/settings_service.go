package service

import (
	"context"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/repository/memory"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	// Current returns the active settings, nil when nothing is configured.
	Current(ctx context.Context) (*entity.Settings, error)
	Show(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.SettingsCache
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, settingsCache *memory.SettingsCache) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		cache:      settingsCache,
	}
}

func (s *settingsService) Current(ctx context.Context) (*entity.Settings, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		s.cache.Set(settings)
	}
	return settings, nil
}

func (s *settingsService) Show(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &dto.SettingsResponse{}, nil
	}
	return s.toResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{Id: uuid.New()}
	}

	settings.SmtpServer = req.SmtpServer
	settings.SmtpPort = req.SmtpPort
	settings.SmtpUser = req.SmtpUser
	if req.SmtpPassword != "" {
		settings.SmtpPassword = req.SmtpPassword
	}
	settings.AdminEmail = req.AdminEmail
	settings.OfferAlertsEnabled = req.OfferAlertsEnabled
	settings.UpdatedAt = time.Now()

	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, err
	}

	s.cache.Set(settings)
	return s.toResponse(settings), nil
}

func (s *settingsService) toResponse(settings *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		SmtpServer:         settings.SmtpServer,
		SmtpPort:           settings.SmtpPort,
		SmtpUser:           settings.SmtpUser,
		AdminEmail:         settings.AdminEmail,
		OfferAlertsEnabled: settings.OfferAlertsEnabled,
		UpdatedAt:          settings.UpdatedAt,
	}
}
