package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BadgeType is a non-mutable status tag displayed on a user's profile.
type BadgeType string

const (
	BadgeIDVerified    BadgeType = "ID Verified"
	BadgeCommunityPro  BadgeType = "Community Pro"
	BadgeFastResponder BadgeType = "Fast Responder"
)

// User represents a resident of the community, both as poster and helper.
// Username/Email/Password are the account identity; the remaining fields are
// the public profile.
type User struct {
	ID          string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string       `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string       `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string       `json:"-" gorm:"type:varchar(255)"`
	Name        string       `json:"name" gorm:"type:varchar(100)"`
	AvatarURL   string       `json:"avatarUrl" gorm:"type:varchar(255)"`
	Location    string       `json:"location" gorm:"type:varchar(100)"`
	Bio         string       `json:"bio"`
	Skills      CategoryList `json:"skills" gorm:"type:text"`
	Reviews     []Review     `json:"reviews" gorm:"foreignKey:UserID"`
	IsVerified  bool         `json:"isVerified"`
	MemberSince string       `json:"memberSince" gorm:"type:varchar(8)"`
	Badges      BadgeList    `json:"badges" gorm:"type:text"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// UserWithStats is a User plus derived statistics. It is never stored;
// it is recomputed from the job and user collections on every read, so it
// cannot drift from its sources.
type UserWithStats struct {
	User
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	JobsPosted    int     `json:"jobsPosted"`
	JobsCompleted int     `json:"jobsCompleted"`
}

// CategoryList stores a slice of job categories as a JSON text column.
type CategoryList []JobCategory

// Value implements driver.Valuer.
func (l CategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *CategoryList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = CategoryList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for CategoryList", value)
	}
}

// BadgeList stores a slice of badges as a JSON text column.
type BadgeList []BadgeType

// Value implements driver.Valuer.
func (l BadgeList) Value() (driver.Value, error) {
	if l == nil {
		l = BadgeList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal badge list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *BadgeList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = BadgeList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for BadgeList", value)
	}
}
