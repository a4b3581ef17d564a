package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	ListId   uuid.UUID `json:"list_id" validate:"required"`
	Subject  string    `json:"subject" validate:"required"`
	HtmlBody string    `json:"html_body" validate:"required"`
}

type CreateCampaignResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type CampaignResponse struct {
	Id         uuid.UUID  `json:"id"`
	ListId     uuid.UUID  `json:"list_id"`
	Subject    string     `json:"subject"`
	Status     string     `json:"status"`
	SentCount  int        `json:"sent_count"`
	ErrorCount int        `json:"error_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
