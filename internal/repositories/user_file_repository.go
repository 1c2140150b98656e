package repositories

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/pkg/blobstore"
)

const usersBlobKey = "hanover-users"

// FileUserRepository keeps the user collection in memory and writes the
// whole collection through to a blob store on every mutation. It seeds the
// store with mock data when the blob is missing or unreadable.
type FileUserRepository struct {
	store *blobstore.Store
	users []models.User
	mu    sync.RWMutex
}

// NewFileUserRepository loads (or seeds) the user collection from the store.
func NewFileUserRepository(store *blobstore.Store) (*FileUserRepository, error) {
	r := &FileUserRepository{store: store}

	var users []models.User
	err := store.Load(usersBlobKey, &users)
	if err != nil || len(users) == 0 {
		if err != nil && err != blobstore.ErrNotFound {
			log.Printf("Error loading users, falling back to seed data: %v", err)
		}
		users = SeedUsers()
		if saveErr := store.Save(usersBlobKey, users); saveErr != nil {
			return nil, fmt.Errorf("failed to seed user store: %w", saveErr)
		}
	}
	r.users = users
	return r, nil
}

// GetAll returns a copy of the user collection.
func (r *FileUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

// GetByID returns a user by their ID.
func (r *FileUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s not found", id)
}

// GetByUsername returns a user by their username.
func (r *FileUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with username %s not found", username)
}

// GetByEmail returns a user by their email.
func (r *FileUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// Create appends a new user and persists the collection.
func (r *FileUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users = append(r.users, *user)
	return r.store.Save(usersBlobKey, r.users)
}

// AddReview prepends a review to the given user's review list and persists
// the collection.
func (r *FileUserRepository) AddReview(userID string, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			review.UserID = userID
			r.users[i].Reviews = append([]models.Review{*review}, r.users[i].Reviews...)
			return r.store.Save(usersBlobKey, r.users)
		}
	}
	return fmt.Errorf("user with ID %s not found", userID)
}
