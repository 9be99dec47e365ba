package store

import (
	"fmt"
	"strings"

	"cityreport-be/models"
)

// Snapshot is the full set of records the API serves. It is built once at
// startup and handed to whatever needs it.
type Snapshot struct {
	Complaints   []models.Complaint   `json:"complaints" yaml:"complaints"`
	Categories   []models.Category    `json:"categories" yaml:"categories"`
	Institutions []models.Institution `json:"institutions" yaml:"institutions"`
	Clubs        []models.Club        `json:"clubs" yaml:"clubs"`
	Friends      []models.Friend      `json:"friends" yaml:"friends"`
	User         models.User          `json:"user" yaml:"user"`
}

// Validate checks the invariants the query functions rely on
func (s *Snapshot) Validate() error {
	ids := make(map[string]bool, len(s.Complaints))
	refs := make(map[string]bool, len(s.Complaints))
	for _, c := range s.Complaints {
		if err := ValidateComplaint(&c); err != nil {
			return err
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate complaint id %q", c.ID)
		}
		ids[c.ID] = true
		if refs[c.ReferenceNumber] {
			return fmt.Errorf("duplicate reference number %q", c.ReferenceNumber)
		}
		refs[c.ReferenceNumber] = true
	}
	for _, cat := range s.Categories {
		if cat.ID == models.FilterAll {
			continue
		}
		if !models.CategoryID(cat.ID).Valid() {
			return fmt.Errorf("category %q: %w", cat.ID, models.ErrUnknownCategory)
		}
	}
	return nil
}

// ValidateComplaint checks a single record: known enums, progress bounds and
// at most one current milestone.
func ValidateComplaint(c *models.Complaint) error {
	if c.ID == "" {
		return fmt.Errorf("complaint without id")
	}
	if c.ReferenceNumber == "" {
		return fmt.Errorf("complaint %s: missing reference number", c.ID)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("complaint %s: %w: %q", c.ID, models.ErrUnknownStatus, c.Status)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("complaint %s: %w: %q", c.ID, models.ErrUnknownCategory, c.Category)
	}
	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("complaint %s: progress %d out of range", c.ID, c.Progress)
	}
	current := 0
	for i, ev := range c.Timeline {
		if !ev.Status.Valid() {
			return fmt.Errorf("complaint %s: %w: %q", c.ID, models.ErrUnknownTimelineStatus, ev.Status)
		}
		if ev.Status == models.TimelineCurrent {
			current++
		}
		if i > 0 && ev.Timestamp != nil {
			prev := c.Timeline[i-1].Timestamp
			if prev == nil || ev.Timestamp.Before(*prev) {
				return fmt.Errorf("complaint %s: timeline event %s out of order", c.ID, ev.ID)
			}
		}
	}
	if current > 1 {
		return fmt.Errorf("complaint %s: %d current timeline events", c.ID, current)
	}
	return nil
}

// SearchInstitutions matches q case-insensitively against name and type.
// Empty city or district match everything.
func SearchInstitutions(institutions []models.Institution, q, city, district string) []models.Institution {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Institution, 0, len(institutions))
	for _, inst := range institutions {
		if q != "" &&
			!strings.Contains(strings.ToLower(inst.Name), q) &&
			!strings.Contains(strings.ToLower(inst.Type), q) {
			continue
		}
		if city != "" && inst.City != city {
			continue
		}
		if district != "" && inst.District != district {
			continue
		}
		out = append(out, inst)
	}
	return out
}
