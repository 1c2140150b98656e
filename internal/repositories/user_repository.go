package repositories

import "github.com/mathaes-33/Hanover-Helpers/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	// AddReview prepends a review to the given user's review list.
	AddReview(userID string, review *models.Review) error
}
