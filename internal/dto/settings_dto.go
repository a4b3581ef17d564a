package dto

import "time"

type UpdateSettingsRequest struct {
	SmtpServer         string `json:"smtp_server" validate:"required"`
	SmtpPort           int    `json:"smtp_port" validate:"required,gt=0"`
	SmtpUser           string `json:"smtp_user"`
	SmtpPassword       string `json:"smtp_password"`
	AdminEmail         string `json:"admin_email" validate:"required,email"`
	OfferAlertsEnabled bool   `json:"offer_alerts_enabled"`
}

type SettingsResponse struct {
	SmtpServer         string    `json:"smtp_server"`
	SmtpPort           int       `json:"smtp_port"`
	SmtpUser           string    `json:"smtp_user"`
	AdminEmail         string    `json:"admin_email"`
	OfferAlertsEnabled bool      `json:"offer_alerts_enabled"`
	UpdatedAt          time.Time `json:"updated_at"`
}
