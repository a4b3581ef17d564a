package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmailList is a named mailing list. Criteria holds the JSON filter
// (areas, city, county, buyerTypes) used to resolve members dynamically;
// manual members live in EmailListMember.
type EmailList struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string         `gorm:"type:text"`
	Criteria    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (EmailList) TableName() string {
	return "email_lists"
}

type EmailListMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListId    uuid.UUID `gorm:"type:uuid;not null;index:idx_list_member,unique,priority:1"`
	BuyerId   uuid.UUID `gorm:"type:uuid;not null;index:idx_list_member,unique,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (EmailListMember) TableName() string {
	return "email_list_members"
}

// Campaign is one queued email blast against a list.
type Campaign struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject    string    `gorm:"type:varchar(255);not null"`
	HtmlBody   string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'QUEUED'"`
	SentCount  int       `gorm:"default:0"`
	ErrorCount int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
