package models

import "time"

// Review is feedback left for a helper after a job. Reviews are owned by the
// reviewed user's review list and are immutable once created.
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"-" gorm:"index;type:varchar(36)"` // the reviewed helper
	JobID      string    `json:"jobId" gorm:"index;type:varchar(36)"`
	ReviewerID string    `json:"reviewerId" gorm:"type:varchar(36)"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
	Date       string    `json:"date" gorm:"type:varchar(40)"`
	CreatedAt  time.Time `json:"-"`
}
