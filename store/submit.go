package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cityreport-be/models"
)

const referencePrefix = "CTC"

// Submission is what a citizen fills in on the new complaint form
type Submission struct {
	Title       string
	Description string
	Category    models.CategoryID
	Address     string
	Coords      models.Coords
	Images      []string
}

// NextReferenceNumber returns the next free CTC-<year>-<seq> code for year.
// Sequences are counted per year and padded to three digits.
func NextReferenceNumber(complaints []models.Complaint, year int) string {
	prefix := fmt.Sprintf("%s-%d-", referencePrefix, year)
	max := 0
	for _, c := range complaints {
		rest, ok := strings.CutPrefix(c.ReferenceNumber, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// NewComplaint builds an awaiting complaint with the initial timeline
func NewComplaint(sub Submission, id, referenceNumber string, now time.Time) models.Complaint {
	images := sub.Images
	if images == nil {
		images = []string{}
	}
	timeline := initialTimeline(now)
	return models.Complaint{
		ID:              id,
		Title:           strings.TrimSpace(sub.Title),
		Description:     strings.TrimSpace(sub.Description),
		Category:        sub.Category,
		Status:          models.StatusAwaiting,
		Coords:          sub.Coords,
		Address:         strings.TrimSpace(sub.Address),
		Images:          images,
		CreatedAt:       now,
		UpdatedAt:       now,
		ReferenceNumber: referenceNumber,
		Progress:        DerivedProgress(timeline),
		Timeline:        timeline,
	}
}
