package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/internal/repositories"
)

// Errors returned by BoardService operations. Handlers translate these into
// HTTP statuses.
var (
	ErrNotLoggedIn      = errors.New("you must be logged in")
	ErrJobNotFound      = errors.New("job not found")
	ErrNoAssignedHelper = errors.New("cannot find the helper for this job")
	ErrNotJobPoster     = errors.New("only the job poster can do that")
	ErrJobNotOpen       = errors.New("job is no longer open")
	ErrOwnJob           = errors.New("you cannot apply to your own job")
)

// EventPublisher publishes board events to a message broker. A nil publisher
// disables events without affecting the operations themselves.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

const eventsRoutingKey = "job_events"

// NewJobInput carries the poster-supplied fields of a new job.
type NewJobInput struct {
	Title       string
	Description string
	Category    models.JobCategory
	Location    string
	Budget      models.Budget
	Date        string
	IsUrgent    bool
}

// NewReviewInput carries the reviewer-supplied fields of a new review.
type NewReviewInput struct {
	JobID   string
	Rating  int
	Comment string
}

// BoardService is the job board's data layer: it owns the job and user
// collections, derives per-user statistics from them, and applies every
// mutation the board supports. All mutations take the caller's user ID; an
// empty ID means the caller is not logged in and nothing is changed.
type BoardService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	events   EventPublisher
}

// NewBoardService creates a new BoardService. events may be nil.
func NewBoardService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository, events EventPublisher) *BoardService {
	return &BoardService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		events:   events,
	}
}

// ListJobs retrieves all jobs, newest first.
func (s *BoardService) ListJobs() ([]models.Job, error) {
	return s.jobRepo.GetAll()
}

// GetJob retrieves a single job by its ID.
func (s *BoardService) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// AddJob creates a new open job posted by the given user and returns it.
func (s *BoardService) AddJob(userID string, input NewJobInput) (*models.Job, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	job := &models.Job{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Budget:      input.Budget,
		Date:        input.Date,
		IsUrgent:    input.IsUrgent,
		PostedBy:    userID,
		Status:      models.StatusOpen,
		Applicants:  models.StringList{},
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.publishEvent("job.created", map[string]interface{}{
		"jobID":    job.ID,
		"postedBy": job.PostedBy,
		"category": job.Category,
	})

	return job, nil
}

// AddReview records a review for the helper assigned to the given job. The
// review is prepended to the helper's review list.
func (s *BoardService) AddReview(userID string, input NewReviewInput) (*models.Review, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	job, err := s.jobRepo.GetByID(input.JobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.AssignedTo == "" {
		return nil, ErrNoAssignedHelper
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		JobID:      job.ID,
		ReviewerID: userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Date:       time.Now().Format("Jan 2, 2006"),
		CreatedAt:  time.Now(),
	}

	if err := s.userRepo.AddReview(job.AssignedTo, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	s.publishEvent("review.added", map[string]interface{}{
		"reviewID": review.ID,
		"jobID":    job.ID,
		"helperID": job.AssignedTo,
		"rating":   review.Rating,
	})

	return review, nil
}

// ExpressInterest adds the caller to the job's applicant list. Applying to a
// job the caller already applied to is a no-op; the poster cannot apply to
// their own job.
func (s *BoardService) ExpressInterest(userID, jobID string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return ErrJobNotFound
	}
	if job.PostedBy == userID {
		return ErrOwnJob
	}
	if job.HasApplicant(userID) {
		return nil
	}

	job.Applicants = append(job.Applicants, userID)
	if err := s.jobRepo.Update(job); err != nil {
		return fmt.Errorf("failed to save applicant: %w", err)
	}
	return nil
}

// AwardJob assigns an open job to a helper: the poster picks the winner, the
// job moves to In Progress and the applicant list is cleared. Whether the
// helper was among the applicants is left to the caller.
func (s *BoardService) AwardJob(userID, jobID, helperID string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return ErrJobNotFound
	}
	if job.PostedBy != userID {
		return ErrNotJobPoster
	}
	if job.Status != models.StatusOpen {
		return ErrJobNotOpen
	}
	if _, err := s.userRepo.GetByID(helperID); err != nil {
		return fmt.Errorf("helper %s not found: %w", helperID, err)
	}

	job.AssignedTo = helperID
	job.Status = models.StatusInProgress
	job.Applicants = models.StringList{}

	if err := s.jobRepo.Update(job); err != nil {
		return fmt.Errorf("failed to award job: %w", err)
	}

	s.publishEvent("job.awarded", map[string]interface{}{
		"jobID":    job.ID,
		"helperID": helperID,
	})

	return nil
}

// Helpers returns every user with their derived statistics.
func (s *BoardService) Helpers() ([]models.UserWithStats, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	jobs, err := s.jobRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	posted := make(map[string]int)
	completed := make(map[string]int)
	for _, job := range jobs {
		posted[job.PostedBy]++
		if job.AssignedTo != "" && job.Status == models.StatusCompleted {
			completed[job.AssignedTo]++
		}
	}

	helpers := make([]models.UserWithStats, 0, len(users))
	for _, user := range users {
		helpers = append(helpers, withStats(user, posted, completed))
	}
	return helpers, nil
}

// GetHelper returns one user with their derived statistics.
func (s *BoardService) GetHelper(id string) (*models.UserWithStats, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	posted := make(map[string]int)
	completed := make(map[string]int)
	for _, job := range jobs {
		posted[job.PostedBy]++
		if job.AssignedTo != "" && job.Status == models.StatusCompleted {
			completed[job.AssignedTo]++
		}
	}

	helper := withStats(*user, posted, completed)
	return &helper, nil
}

// withStats derives a user's statistics from their reviews and the job
// counts. The rating is the mean of the review ratings rounded to one
// decimal place, or 0 with no reviews.
func withStats(user models.User, posted, completed map[string]int) models.UserWithStats {
	if user.Reviews == nil {
		user.Reviews = []models.Review{}
	}

	var rating float64
	if len(user.Reviews) > 0 {
		var total int
		for _, review := range user.Reviews {
			total += review.Rating
		}
		rating = math.Round(float64(total)/float64(len(user.Reviews))*10) / 10
	}

	return models.UserWithStats{
		User:          user,
		Rating:        rating,
		ReviewCount:   len(user.Reviews),
		JobsPosted:    posted[user.ID],
		JobsCompleted: completed[user.ID],
	}
}

// publishEvent sends a board event to the broker. Failures are logged and
// never fail the triggering operation.
func (s *BoardService) publishEvent(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	payload["event"] = event
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.events.Publish("", eventsRoutingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	} else {
		log.Printf("Published %s event", event)
	}
}
