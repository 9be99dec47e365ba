package store

import (
	"sort"

	"cityreport-be/models"
)

// FilterByCategory returns the complaints filed under categoryID, in input
// order. The "all" filter returns the input unchanged.
func FilterByCategory(complaints []models.Complaint, categoryID string) []models.Complaint {
	if categoryID == models.FilterAll {
		return complaints
	}
	return filter(complaints, func(c *models.Complaint) bool {
		return string(c.Category) == categoryID
	})
}

// FilterByStatus returns the complaints holding statusID, in input order.
// The "all" filter returns the input unchanged.
func FilterByStatus(complaints []models.Complaint, statusID string) []models.Complaint {
	if statusID == models.FilterAll {
		return complaints
	}
	return filter(complaints, func(c *models.Complaint) bool {
		return string(c.Status) == statusID
	})
}

func FilterByCategoryAndStatus(complaints []models.Complaint, categoryID, statusID string) []models.Complaint {
	return FilterByStatus(FilterByCategory(complaints, categoryID), statusID)
}

// SortByRecency returns a copy ordered by CreatedAt, newest first.
// Complaints created at the same instant keep their input order.
func SortByRecency(complaints []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, len(complaints))
	copy(out, complaints)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortByAge is SortByRecency reversed: oldest first, stable on ties.
func SortByAge(complaints []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, len(complaints))
	copy(out, complaints)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// StatusCounts holds the number of complaints per status. All is the total.
type StatusCounts struct {
	All      int `json:"all"`
	Awaiting int `json:"awaiting"`
	InReview int `json:"inReview"`
	Resolved int `json:"resolved"`
	Rejected int `json:"rejected"`
}

func CountByStatus(complaints []models.Complaint) StatusCounts {
	counts := StatusCounts{All: len(complaints)}
	for i := range complaints {
		switch complaints[i].Status {
		case models.StatusAwaiting:
			counts.Awaiting++
		case models.StatusInReview:
			counts.InReview++
		case models.StatusResolved:
			counts.Resolved++
		case models.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// Recent returns the first n complaints as given. It does not sort.
// The result is capped so appending to it never writes into complaints.
func Recent(complaints []models.Complaint, n int) []models.Complaint {
	if n <= 0 {
		return complaints[:0:0]
	}
	if n > len(complaints) {
		n = len(complaints)
	}
	return complaints[:n:n]
}

// FindByID returns the complaint with the given id or a *NotFoundError
func FindByID(complaints []models.Complaint, id string) (models.Complaint, error) {
	for i := range complaints {
		if complaints[i].ID == id {
			return complaints[i], nil
		}
	}
	return models.Complaint{}, &NotFoundError{ID: id}
}

func filter(complaints []models.Complaint, keep func(*models.Complaint) bool) []models.Complaint {
	out := make([]models.Complaint, 0, len(complaints))
	for i := range complaints {
		if keep(&complaints[i]) {
			out = append(out, complaints[i])
		}
	}
	return out
}
