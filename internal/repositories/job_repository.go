package repositories

import "github.com/mathaes-33/Hanover-Helpers/internal/models"

// JobRepository defines the interface for job data access. Jobs are never
// deleted; GetAll returns them newest first.
type JobRepository interface {
	GetAll() ([]models.Job, error)
	GetByID(id string) (*models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
}
