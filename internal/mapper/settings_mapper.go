package mapper

import (
	"landivo-be/internal/entity"
	"landivo-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.Settings) *entity.Settings {
	if s == nil {
		return nil
	}

	return &entity.Settings{
		Id:                 s.Id,
		SmtpServer:         s.SmtpServer,
		SmtpPort:           s.SmtpPort,
		SmtpUser:           s.SmtpUser,
		SmtpPassword:       s.SmtpPassword,
		AdminEmail:         s.AdminEmail,
		OfferAlertsEnabled: s.OfferAlertsEnabled,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.Settings) *model.Settings {
	if s == nil {
		return nil
	}

	return &model.Settings{
		Id:                 s.Id,
		SmtpServer:         s.SmtpServer,
		SmtpPort:           s.SmtpPort,
		SmtpUser:           s.SmtpUser,
		SmtpPassword:       s.SmtpPassword,
		AdminEmail:         s.AdminEmail,
		OfferAlertsEnabled: s.OfferAlertsEnabled,
		UpdatedAt:          s.UpdatedAt,
	}
}
