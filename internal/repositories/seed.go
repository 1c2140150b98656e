package repositories

import (
	"time"

	"github.com/mathaes-33/Hanover-Helpers/internal/models"
)

// Seed data for a fresh installation: a small cast of Hanover residents and
// a handful of open jobs. Used by the file-backed repositories on first load
// and by the startup seeding of empty databases.

// SeedUsers returns the initial user collection.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:        "user-1",
			Username:  "sarah.jenkins",
			Email:     "sarah.jenkins@example.com",
			Name:      "Sarah Jenkins",
			AvatarURL: "https://picsum.photos/seed/user-1/100/100",
			Location:  "Hanover",
			Bio:       "Retired teacher with a green thumb. Happy to help with gardens, lawns and anything outdoors.",
			Skills:    models.CategoryList{models.CategoryLawnCare, models.CategoryPetCare},
			Reviews: []models.Review{
				{
					ID:         "review-1",
					UserID:     "user-1",
					JobID:      "job-5",
					ReviewerID: "user-3",
					Rating:     5,
					Comment:    "Sarah did a wonderful job with our flower beds. Highly recommend!",
					Date:       "Jul 12, 2026",
					CreatedAt:  time.Date(2026, 7, 12, 10, 0, 0, 0, time.UTC),
				},
				{
					ID:         "review-2",
					UserID:     "user-1",
					JobID:      "job-6",
					ReviewerID: "user-2",
					Rating:     4,
					Comment:    "Reliable and friendly. The lawn looks great.",
					Date:       "Jun 3, 2026",
					CreatedAt:  time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC),
				},
			},
			IsVerified:  true,
			MemberSince: "2023",
			Badges:      models.BadgeList{models.BadgeIDVerified, models.BadgeCommunityPro},
			CreatedAt:   time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "user-2",
			Username:  "mike.thompson",
			Email:     "mike.thompson@example.com",
			Name:      "Mike Thompson",
			AvatarURL: "https://picsum.photos/seed/user-2/100/100",
			Location:  "Walkerton",
			Bio:       "Carpenter by trade. Evenings and weekends free for odd jobs, repairs and moving help.",
			Skills:    models.CategoryList{models.CategoryHandyman, models.CategoryMoving, models.CategorySnowRemoval},
			Reviews: []models.Review{
				{
					ID:         "review-3",
					UserID:     "user-2",
					JobID:      "job-7",
					ReviewerID: "user-1",
					Rating:     5,
					Comment:    "Fixed our fence in an afternoon. Fast and tidy.",
					Date:       "May 20, 2026",
					CreatedAt:  time.Date(2026, 5, 20, 16, 0, 0, 0, time.UTC),
				},
			},
			IsVerified:  true,
			MemberSince: "2024",
			Badges:      models.BadgeList{models.BadgeIDVerified, models.BadgeFastResponder},
			CreatedAt:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "user-3",
			Username:    "linda.chu",
			Email:       "linda.chu@example.com",
			Name:        "Linda Chu",
			AvatarURL:   "https://picsum.photos/seed/user-3/100/100",
			Location:    "Hanover",
			Bio:         "Stay-at-home mom offering babysitting and errand runs around town.",
			Skills:      models.CategoryList{models.CategoryBabysitting, models.CategoryErrands, models.CategoryCleaning},
			Reviews:     []models.Review{},
			IsVerified:  false,
			MemberSince: "2025",
			Badges:      models.BadgeList{},
			CreatedAt:   time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC),
		},
	}
}

// SeedJobs returns the initial job collection, newest first.
func SeedJobs() []models.Job {
	return []models.Job{
		{
			ID:          "job-1",
			Title:       "Mow my front and back lawn",
			Description: "Average size lot on 10th Street. Mower provided, should take about an hour.",
			Category:    models.CategoryLawnCare,
			Location:    "Hanover",
			Budget:      models.Budget{Type: models.BudgetFixed, Amount: 40},
			Date:        "This Saturday",
			IsUrgent:    false,
			PostedBy:    "user-3",
			Status:      models.StatusOpen,
			Applicants:  models.StringList{},
			CreatedAt:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-2",
			Title:       "Help moving a couch upstairs",
			Description: "Need two strong hands to get a sectional up one flight of stairs. ASAP please!",
			Category:    models.CategoryMoving,
			Location:    "Walkerton",
			Budget:      models.Budget{Type: models.BudgetFixed, Amount: 60},
			Date:        "Today",
			IsUrgent:    true,
			PostedBy:    "user-1",
			Status:      models.StatusOpen,
			Applicants:  models.StringList{"user-2"},
			CreatedAt:   time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-3",
			Title:       "Weekly dog walking",
			Description: "Friendly golden retriever needs a 30 minute walk on weekday afternoons.",
			Category:    models.CategoryPetCare,
			Location:    "Durham",
			Budget:      models.Budget{Type: models.BudgetHourly, Amount: 20},
			Date:        "Flexible",
			IsUrgent:    false,
			PostedBy:    "user-2",
			Status:      models.StatusOpen,
			Applicants:  models.StringList{},
			CreatedAt:   time.Date(2026, 8, 18, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-4",
			Title:       "Snow blow the driveway",
			Description: "Double-wide driveway, snow blower available in the garage.",
			Category:    models.CategorySnowRemoval,
			Location:    "Hanover",
			Budget:      models.Budget{Type: models.BudgetFixed, Amount: 30},
			Date:        "After the next storm",
			IsUrgent:    false,
			PostedBy:    "user-3",
			AssignedTo:  "user-2",
			Status:      models.StatusInProgress,
			Applicants:  models.StringList{},
			CreatedAt:   time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          "job-5",
			Title:       "Tidy up flower beds",
			Description: "Weeding and edging around the front walk.",
			Category:    models.CategoryLawnCare,
			Location:    "Hanover",
			Budget:      models.Budget{Type: models.BudgetHourly, Amount: 18},
			Date:        "Completed",
			IsUrgent:    false,
			PostedBy:    "user-3",
			AssignedTo:  "user-1",
			Status:      models.StatusCompleted,
			Applicants:  models.StringList{},
			CreatedAt:   time.Date(2026, 7, 5, 10, 0, 0, 0, time.UTC),
		},
	}
}
