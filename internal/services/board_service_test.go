package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/internal/services"
)

// MockJobRepository is a mock implementation of repositories.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetAll() ([]models.Job, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(id string) (*models.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Create(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) Update(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func newBoardService(users *MockUserRepository, jobs *MockJobRepository, events services.EventPublisher) *services.BoardService {
	return services.NewBoardService(users, jobs, events)
}

func TestBoardService_AddJob_RequiresLogin(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	job, err := service.AddJob("", services.NewJobInput{Title: "Mow my lawn"})
	assert.ErrorIs(t, err, services.ErrNotLoggedIn)
	assert.Nil(t, job)

	// Nothing may be written when the caller is not logged in
	mockJobs.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBoardService_AddJob(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	mockEvents := new(MockEventPublisher)
	service := newBoardService(mockUsers, mockJobs, mockEvents)

	mockJobs.On("Create", mock.AnythingOfType("*models.Job")).Return(nil).Once()
	mockEvents.On("Publish", "", "job_events", mock.Anything).Return(nil).Once()

	job, err := service.AddJob("user-1", services.NewJobInput{
		Title:       "Mow my lawn",
		Description: "Front and back, mower provided.",
		Category:    models.CategoryLawnCare,
		Location:    "Hanover",
		Budget:      models.Budget{Type: models.BudgetFixed, Amount: 40},
		Date:        "This Saturday",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "user-1", job.PostedBy)
	assert.Equal(t, models.StatusOpen, job.Status)
	assert.Empty(t, job.Applicants)
	assert.NotNil(t, job.Applicants)
	mockJobs.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestBoardService_ExpressInterest_Idempotent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	// First application appends the caller and saves
	open := &models.Job{
		ID:         "job-1",
		PostedBy:   "poster",
		Status:     models.StatusOpen,
		Applicants: models.StringList{},
	}
	mockJobs.On("GetByID", "job-1").Return(open, nil).Once()
	mockJobs.On("Update", mock.MatchedBy(func(job *models.Job) bool {
		return len(job.Applicants) == 1 && job.Applicants[0] == "helper"
	})).Return(nil).Once()

	err := service.ExpressInterest("helper", "job-1")
	assert.NoError(t, err)

	// Applying again has no additional effect
	applied := &models.Job{
		ID:         "job-1",
		PostedBy:   "poster",
		Status:     models.StatusOpen,
		Applicants: models.StringList{"helper"},
	}
	mockJobs.On("GetByID", "job-1").Return(applied, nil).Once()

	err = service.ExpressInterest("helper", "job-1")
	assert.NoError(t, err)

	mockJobs.AssertExpectations(t)
	mockJobs.AssertNumberOfCalls(t, "Update", 1)
}

func TestBoardService_ExpressInterest_OwnJob(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	own := &models.Job{
		ID:         "job-1",
		PostedBy:   "poster",
		Status:     models.StatusOpen,
		Applicants: models.StringList{},
	}
	mockJobs.On("GetByID", "job-1").Return(own, nil).Once()

	err := service.ExpressInterest("poster", "job-1")
	assert.ErrorIs(t, err, services.ErrOwnJob)
	mockJobs.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBoardService_AwardJob(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	open := &models.Job{
		ID:         "job-1",
		PostedBy:   "poster",
		Status:     models.StatusOpen,
		Applicants: models.StringList{"helper", "other-helper"},
	}
	mockJobs.On("GetByID", "job-1").Return(open, nil).Once()
	mockUsers.On("GetByID", "helper").Return(&models.User{ID: "helper"}, nil).Once()
	mockJobs.On("Update", mock.MatchedBy(func(job *models.Job) bool {
		return job.Status == models.StatusInProgress &&
			job.AssignedTo == "helper" &&
			len(job.Applicants) == 0
	})).Return(nil).Once()

	err := service.AwardJob("poster", "job-1", "helper")
	assert.NoError(t, err)
	mockJobs.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestBoardService_AwardJob_OnlyPoster(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	open := &models.Job{ID: "job-1", PostedBy: "poster", Status: models.StatusOpen}
	mockJobs.On("GetByID", "job-1").Return(open, nil).Once()

	err := service.AwardJob("someone-else", "job-1", "helper")
	assert.ErrorIs(t, err, services.ErrNotJobPoster)
	mockJobs.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBoardService_AwardJob_NotOpen(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	inProgress := &models.Job{ID: "job-1", PostedBy: "poster", Status: models.StatusInProgress, AssignedTo: "helper"}
	mockJobs.On("GetByID", "job-1").Return(inProgress, nil).Once()

	err := service.AwardJob("poster", "job-1", "other-helper")
	assert.ErrorIs(t, err, services.ErrJobNotOpen)
	mockJobs.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBoardService_AddReview(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	// The job must have an assigned helper
	unassigned := &models.Job{ID: "job-1", PostedBy: "poster", Status: models.StatusOpen}
	mockJobs.On("GetByID", "job-1").Return(unassigned, nil).Once()

	review, err := service.AddReview("poster", services.NewReviewInput{JobID: "job-1", Rating: 5, Comment: "Great!"})
	assert.ErrorIs(t, err, services.ErrNoAssignedHelper)
	assert.Nil(t, review)
	mockUsers.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything)

	// Successful review lands on the assigned helper
	assigned := &models.Job{ID: "job-2", PostedBy: "poster", Status: models.StatusCompleted, AssignedTo: "helper"}
	mockJobs.On("GetByID", "job-2").Return(assigned, nil).Once()
	mockUsers.On("AddReview", "helper", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	review, err = service.AddReview("poster", services.NewReviewInput{JobID: "job-2", Rating: 4, Comment: "Good work"})
	assert.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "job-2", review.JobID)
	assert.Equal(t, "poster", review.ReviewerID)
	assert.Equal(t, 4, review.Rating)
	assert.NotEmpty(t, review.Date)
	mockUsers.AssertExpectations(t)
}

func TestBoardService_Helpers_Stats(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJobs := new(MockJobRepository)
	service := newBoardService(mockUsers, mockJobs, nil)

	users := []models.User{
		{
			ID: "u1",
			Reviews: []models.Review{
				{ID: "r1", Rating: 5},
				{ID: "r2", Rating: 4},
				{ID: "r3", Rating: 4},
			},
		},
		{ID: "u2", Reviews: []models.Review{}},
	}
	jobs := []models.Job{
		{ID: "j1", PostedBy: "u2", AssignedTo: "u1", Status: models.StatusCompleted},
		{ID: "j2", PostedBy: "u2", AssignedTo: "u1", Status: models.StatusInProgress},
		{ID: "j3", PostedBy: "u1", Status: models.StatusOpen},
	}
	mockUsers.On("GetAll").Return(users, nil).Once()
	mockJobs.On("GetAll").Return(jobs, nil).Once()

	helpers, err := service.Helpers()
	assert.NoError(t, err)
	assert.Len(t, helpers, 2)

	// (5+4+4)/3 = 4.333... rounds to one decimal place
	assert.Equal(t, 4.3, helpers[0].Rating)
	assert.Equal(t, 3, helpers[0].ReviewCount)
	assert.Equal(t, 1, helpers[0].JobsPosted)
	assert.Equal(t, 1, helpers[0].JobsCompleted)

	// No reviews means rating 0, not NaN
	assert.Equal(t, 0.0, helpers[1].Rating)
	assert.Equal(t, 0, helpers[1].ReviewCount)
	assert.Equal(t, 2, helpers[1].JobsPosted)
	assert.Equal(t, 0, helpers[1].JobsCompleted)
}
