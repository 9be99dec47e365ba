package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cityreport-be/models"
	"cityreport-be/store"
)

// MemoryRepository keeps everything in process memory, starting from a snapshot
type MemoryRepository struct {
	mu         sync.RWMutex
	complaints []models.Complaint
	users      []models.User
}

func NewMemoryRepository(snap store.Snapshot) *MemoryRepository {
	complaints := make([]models.Complaint, len(snap.Complaints))
	copy(complaints, snap.Complaints)

	var users []models.User
	if snap.User.ID != "" {
		users = append(users, snap.User)
	}
	return &MemoryRepository{complaints: complaints, users: users}
}

// ListComplaints returns a copy in insertion order
func (r *MemoryRepository) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Complaint, len(r.complaints))
	copy(out, r.complaints)
	return out, nil
}

func (r *MemoryRepository) GetComplaint(ctx context.Context, id string) (models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return store.FindByID(r.complaints, id)
}

func (r *MemoryRepository) CreateComplaint(ctx context.Context, sub store.Submission, now time.Time) (models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref := store.NextReferenceNumber(r.complaints, now.Year())
	c := store.NewComplaint(sub, uuid.NewString(), ref, now)
	r.complaints = append(r.complaints, c)
	return c, nil
}

func (r *MemoryRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
