package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cityreport-be/models"
	"cityreport-be/store"
)

const createAttempts = 3

// MongoRepository stores complaints and users in MongoDB
type MongoRepository struct {
	complaints *mongo.Collection
	users      *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		complaints: db.Collection("complaints"),
		users:      db.Collection("users"),
	}
}

// EnsureIndexes creates the unique indexes on reference numbers and emails
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "referenceNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("complaint index: %w", err)
	}
	_, err = r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("user index: %w", err)
	}
	return nil
}

// Seed inserts the snapshot's complaints when the collection is empty and
// the snapshot user when missing. It reports whether complaints were written.
func (r *MongoRepository) Seed(ctx context.Context, snap store.Snapshot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if snap.User.ID != "" {
		_, err := r.users.InsertOne(ctx, snap.User)
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return false, fmt.Errorf("seed user: %w", err)
		}
	}

	count, err := r.complaints.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count complaints: %w", err)
	}
	if count > 0 || len(snap.Complaints) == 0 {
		return false, nil
	}
	docs := make([]interface{}, 0, len(snap.Complaints))
	for _, c := range snap.Complaints {
		docs = append(docs, c)
	}
	if _, err := r.complaints.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("seed complaints: %w", err)
	}
	return true, nil
}

// ListComplaints returns complaints in insertion order
func (r *MongoRepository) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.complaints.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	defer cursor.Close(ctx)

	complaints := []models.Complaint{}
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return complaints, nil
}

func (r *MongoRepository) GetComplaint(ctx context.Context, id string) (models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var c models.Complaint
	err := r.complaints.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Complaint{}, &store.NotFoundError{ID: id}
	}
	if err != nil {
		return models.Complaint{}, fmt.Errorf("find complaint: %w", err)
	}
	return c, nil
}

// CreateComplaint retries when a concurrent insert takes the same reference number
func (r *MongoRepository) CreateComplaint(ctx context.Context, sub store.Submission, now time.Time) (models.Complaint, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		existing, err := r.ListComplaints(ctx)
		if err != nil {
			return models.Complaint{}, err
		}
		ref := store.NextReferenceNumber(existing, now.Year())
		c := store.NewComplaint(sub, uuid.NewString(), ref, now)

		insertCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		_, err = r.complaints.InsertOne(insertCtx, c)
		cancel()
		if err == nil {
			return c, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return models.Complaint{}, fmt.Errorf("insert complaint: %w", err)
		}
	}
	return models.Complaint{}, fmt.Errorf("insert complaint: reference number still taken after %d attempts", createAttempts)
}

func (r *MongoRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	user.Email = strings.ToLower(user.Email)
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var u models.User
	err := r.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
