package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	StreetAddress string  `json:"street_address" validate:"required"`
	City          string  `json:"city" validate:"required"`
	County        string  `json:"county"`
	State         string  `json:"state" validate:"required"`
	Zip           string  `json:"zip" validate:"required"`
	Area          string  `json:"area"`
	Apn           string  `json:"apn"`
	AcreageSqft   float64 `json:"acreage_sqft"`
	AskingPrice   float64 `json:"asking_price" validate:"required,gt=0"`
	MinPrice      float64 `json:"min_price"`
	Financing     bool    `json:"financing"`
	Featured      bool    `json:"featured"`
}

type CreatePropertyResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePropertyRequest struct {
	Id            uuid.UUID
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	StreetAddress string  `json:"street_address" validate:"required"`
	City          string  `json:"city" validate:"required"`
	County        string  `json:"county"`
	State         string  `json:"state" validate:"required"`
	Zip           string  `json:"zip" validate:"required"`
	Area          string  `json:"area"`
	Apn           string  `json:"apn"`
	AcreageSqft   float64 `json:"acreage_sqft"`
	AskingPrice   float64 `json:"asking_price" validate:"required,gt=0"`
	MinPrice      float64 `json:"min_price"`
	Financing     bool    `json:"financing"`
	Featured      bool    `json:"featured"`
	Status        string  `json:"status" validate:"required,oneof=Available Pending Sold 'Not Available' Testing"`
}

type PropertyResponse struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	StreetAddress string     `json:"street_address"`
	City          string     `json:"city"`
	County        string     `json:"county"`
	State         string     `json:"state"`
	Zip           string     `json:"zip"`
	Area          string     `json:"area"`
	Apn           string     `json:"apn"`
	AcreageSqft   float64    `json:"acreage_sqft"`
	AskingPrice   float64    `json:"asking_price"`
	MinPrice      float64    `json:"min_price"`
	Financing     bool       `json:"financing"`
	Status        string     `json:"status"`
	Featured      bool       `json:"featured"`
	ViewCount     int64      `json:"view_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type ListPropertiesRequest struct {
	Status   string `query:"status"`
	City     string `query:"city"`
	Area     string `query:"area"`
	Featured bool   `query:"featured"`
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
}

type ListPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}
