// FILE: internal/entity/email_list_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListCriteria is the normalized filter attached to a mailing list. Empty
// slices mean "no constraint on that dimension".
type ListCriteria struct {
	Areas      []string `json:"areas,omitempty"`
	City       []string `json:"city,omitempty"`
	County     []string `json:"county,omitempty"`
	BuyerTypes []string `json:"buyerTypes,omitempty"`
	IsVIP      *bool    `json:"isVIP,omitempty"`
}

// Empty reports whether the criteria carries no filters at all.
func (c *ListCriteria) Empty() bool {
	return len(c.Areas) == 0 && len(c.City) == 0 && len(c.County) == 0 &&
		len(c.BuyerTypes) == 0 && c.IsVIP == nil
}

type EmailList struct {
	Id          uuid.UUID
	Name        string
	Description string
	Criteria    *ListCriteria
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

type EmailListMember struct {
	Id        uuid.UUID
	ListId    uuid.UUID
	BuyerId   uuid.UUID
	CreatedAt time.Time
}

type CampaignStatus string

const (
	CampaignStatusQueued  CampaignStatus = "QUEUED"
	CampaignStatusSending CampaignStatus = "SENDING"
	CampaignStatusDone    CampaignStatus = "DONE"
)

type Campaign struct {
	Id         uuid.UUID
	ListId     uuid.UUID
	Subject    string
	HtmlBody   string
	Status     CampaignStatus
	SentCount  int
	ErrorCount int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
