package repositories

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/pkg/blobstore"
)

const jobsBlobKey = "hanover-jobs"

// FileJobRepository keeps the job collection in memory, newest first, and
// writes the whole collection through to a blob store on every mutation.
type FileJobRepository struct {
	store *blobstore.Store
	jobs  []models.Job
	mu    sync.RWMutex
}

// NewFileJobRepository loads (or seeds) the job collection from the store.
func NewFileJobRepository(store *blobstore.Store) (*FileJobRepository, error) {
	r := &FileJobRepository{store: store}

	var jobs []models.Job
	err := store.Load(jobsBlobKey, &jobs)
	if err != nil {
		if err != blobstore.ErrNotFound {
			log.Printf("Error loading jobs, falling back to seed data: %v", err)
		}
		jobs = SeedJobs()
		if saveErr := store.Save(jobsBlobKey, jobs); saveErr != nil {
			return nil, fmt.Errorf("failed to seed job store: %w", saveErr)
		}
	}
	r.jobs = jobs
	return r, nil
}

// GetAll returns a copy of the job collection in stored order.
func (r *FileJobRepository) GetAll() ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]models.Job, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs, nil
}

// GetByID returns a job by its ID.
func (r *FileJobRepository) GetByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.jobs {
		if r.jobs[i].ID == id {
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job with ID %s not found", id)
}

// Create prepends a new job and persists the collection.
func (r *FileJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	r.jobs = append([]models.Job{*job}, r.jobs...)
	return r.store.Save(jobsBlobKey, r.jobs)
}

// Update replaces an existing job in place and persists the collection.
func (r *FileJobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.jobs {
		if r.jobs[i].ID == job.ID {
			r.jobs[i] = *job
			return r.store.Save(jobsBlobKey, r.jobs)
		}
	}
	return fmt.Errorf("job with ID %s not found for update", job.ID)
}
