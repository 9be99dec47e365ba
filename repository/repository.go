package repository

import (
	"context"
	"errors"
	"time"

	"cityreport-be/models"
	"cityreport-be/store"
)

// ErrEmailTaken is returned when registering an email that already has an account
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrUserNotFound is returned by user lookups with no match
var ErrUserNotFound = errors.New("user not found")

// Repository holds complaints and accounts. Complaint lookups return errors
// matching store.ErrNotFound when nothing matches.
type Repository interface {
	ListComplaints(ctx context.Context) ([]models.Complaint, error)
	GetComplaint(ctx context.Context, id string) (models.Complaint, error)
	// CreateComplaint assigns the id and reference number and stores the complaint
	CreateComplaint(ctx context.Context, sub store.Submission, now time.Time) (models.Complaint, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}
