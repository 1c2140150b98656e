package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JobCategory is one of the fixed job types residents can post under.
type JobCategory string

const (
	CategoryLawnCare    JobCategory = "Lawn Care"
	CategoryHandyman    JobCategory = "Handyman"
	CategoryMoving      JobCategory = "Moving Help"
	CategoryErrands     JobCategory = "Errands"
	CategoryBabysitting JobCategory = "Babysitting"
	CategoryCleaning    JobCategory = "Cleaning"
	CategoryPetCare     JobCategory = "Pet Care"
	CategorySnowRemoval JobCategory = "Snow Removal"
)

// JobCategories lists every category in display order.
var JobCategories = []JobCategory{
	CategoryLawnCare,
	CategoryHandyman,
	CategoryMoving,
	CategoryErrands,
	CategoryBabysitting,
	CategoryCleaning,
	CategoryPetCare,
	CategorySnowRemoval,
}

// BudgetType distinguishes a one-off price from an hourly rate.
type BudgetType string

const (
	BudgetFixed  BudgetType = "Fixed Rate"
	BudgetHourly BudgetType = "Hourly"
)

// JobStatus tracks a job through its lifecycle: Open -> In Progress -> Completed.
type JobStatus string

const (
	StatusOpen       JobStatus = "Open"
	StatusInProgress JobStatus = "In Progress"
	StatusCompleted  JobStatus = "Completed"
)

// Budget is the amount a poster is willing to pay, fixed or hourly.
type Budget struct {
	Type   BudgetType `json:"type" gorm:"type:varchar(20)" validate:"required,oneof='Fixed Rate' 'Hourly'"`
	Amount float64    `json:"amount" validate:"required,gt=0"`
}

// Job is a task posted by a resident seeking help.
type Job struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string      `json:"title" gorm:"type:varchar(100)"`
	Description string      `json:"description"`
	Category    JobCategory `json:"category" gorm:"type:varchar(30)"`
	Location    string      `json:"location" gorm:"type:varchar(100)"`
	Budget      Budget      `json:"budget" gorm:"embedded;embeddedPrefix:budget_"`
	Date        string      `json:"date" gorm:"type:varchar(100)"` // free text, e.g. "This Saturday"
	IsUrgent    bool        `json:"isUrgent"`
	PostedBy    string      `json:"postedBy" gorm:"index;type:varchar(36)"`
	AssignedTo  string      `json:"assignedTo,omitempty" gorm:"index;type:varchar(36)"`
	Status      JobStatus   `json:"status" gorm:"type:varchar(20)"`
	Applicants  StringList  `json:"applicants" gorm:"type:text"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

// HasApplicant reports whether the given user already expressed interest.
func (j *Job) HasApplicant(userID string) bool {
	for _, id := range j.Applicants {
		if id == userID {
			return true
		}
	}
	return false
}

// StringList stores a slice of IDs as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}
