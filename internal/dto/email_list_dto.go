package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListCriteriaPayload struct {
	Areas      []string `json:"areas"`
	City       []string `json:"city"`
	County     []string `json:"county"`
	BuyerTypes []string `json:"buyerTypes"`
	IsVIP      *bool    `json:"isVIP"`
}

type CreateEmailListRequest struct {
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
	Criteria    *ListCriteriaPayload `json:"criteria"`
}

type CreateEmailListResponse struct {
	Id          uuid.UUID `json:"id"`
	MemberCount int       `json:"member_count"`
}

type UpdateEmailListRequest struct {
	Id          uuid.UUID
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
	Criteria    *ListCriteriaPayload `json:"criteria"`
}

type EmailListResponse struct {
	Id          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Criteria    *ListCriteriaPayload `json:"criteria,omitempty"`
	MemberCount int64                `json:"member_count"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   *time.Time           `json:"updated_at"`
}

type AddListMembersRequest struct {
	Id       uuid.UUID
	BuyerIds []uuid.UUID `json:"buyer_ids" validate:"required,min=1"`
}

type AddListMembersResponse struct {
	Added int `json:"added"`
}
