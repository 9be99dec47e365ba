package models

import (
	"time"
)

// Status is the processing state of a complaint
type Status string

const (
	StatusAwaiting Status = "awaiting"
	StatusInReview Status = "inReview"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

// Statuses lists every complaint status in lifecycle order
var Statuses = []Status{StatusAwaiting, StatusInReview, StatusResolved, StatusRejected}

// TimelineStatus is the state of a single milestone on a complaint's timeline
type TimelineStatus string

const (
	TimelineCompleted TimelineStatus = "completed"
	TimelineCurrent   TimelineStatus = "current"
	TimelinePending   TimelineStatus = "pending"
)

// TimelineStatuses lists every timeline milestone state
var TimelineStatuses = []TimelineStatus{TimelineCompleted, TimelineCurrent, TimelinePending}

// Coords is a latitude/longitude pair used for map placement
type Coords struct {
	Latitude  float64 `bson:"latitude" json:"latitude" yaml:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude" yaml:"longitude"`
}

// TimelineEvent is one milestone in a complaint's processing history.
// Timestamp is nil for milestones that have not been reached yet.
type TimelineEvent struct {
	ID          string         `bson:"id" json:"id" yaml:"id"`
	Title       string         `bson:"title" json:"title" yaml:"title"`
	Description string         `bson:"description" json:"description" yaml:"description"`
	Timestamp   *time.Time     `bson:"timestamp,omitempty" json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Status      TimelineStatus `bson:"status" json:"status" yaml:"status"`
}

// Complaint represents a municipal issue reported by a citizen
type Complaint struct {
	ID              string          `bson:"_id" json:"id" yaml:"id"`
	Title           string          `bson:"title" json:"title" yaml:"title"`
	Description     string          `bson:"description" json:"description" yaml:"description"`
	Category        CategoryID      `bson:"category" json:"category" yaml:"category"`
	Status          Status          `bson:"status" json:"status" yaml:"status"`
	Coords          Coords          `bson:"coords" json:"coords" yaml:"coords"`
	Address         string          `bson:"address" json:"address" yaml:"address"`
	Images          []string        `bson:"images" json:"images" yaml:"images"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt" yaml:"updatedAt"`
	ReferenceNumber string          `bson:"referenceNumber" json:"referenceNumber" yaml:"referenceNumber"`
	Institution     *string         `bson:"institution,omitempty" json:"institution,omitempty" yaml:"institution,omitempty"`
	Progress        int             `bson:"progress" json:"progress" yaml:"progress"`
	Timeline        []TimelineEvent `bson:"timeline" json:"timeline" yaml:"timeline"`
}
