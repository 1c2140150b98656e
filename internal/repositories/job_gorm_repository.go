package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{
		db: db,
	}
}

// GetAll retrieves all jobs from the database, newest first.
func (r *GORMJobRepository) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all jobs: %w", err)
	}
	return jobs, nil
}

// GetByID retrieves a single job by its ID from the database.
func (r *GORMJobRepository) GetByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// Create creates a new job in the database.
func (r *GORMJobRepository) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Update updates an existing job in the database.
func (r *GORMJobRepository) Update(job *models.Job) error {
	res := r.db.Save(job) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected instead.
		return fmt.Errorf("job with ID %s not found for update", job.ID)
	}
	return nil
}
