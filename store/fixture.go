package store

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadFixture reads a YAML or JSON snapshot from path and validates it.
// Sections missing from the file fall back to the built-in seed.
func LoadFixture(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse fixture: %w", err)
	}

	seed := Seed()
	if snap.Complaints == nil {
		snap.Complaints = seed.Complaints
	}
	if snap.Categories == nil {
		snap.Categories = seed.Categories
	}
	if snap.Institutions == nil {
		snap.Institutions = seed.Institutions
	}
	if snap.Clubs == nil {
		snap.Clubs = seed.Clubs
	}
	if snap.Friends == nil {
		snap.Friends = seed.Friends
	}
	if snap.User.ID == "" {
		snap.User = seed.User
	}
	for i := range snap.Complaints {
		c := &snap.Complaints[i]
		if c.Images == nil {
			c.Images = []string{}
		}
		// milestones not reached yet are written as timestamp: ""
		for j := range c.Timeline {
			if ts := c.Timeline[j].Timestamp; ts != nil && ts.IsZero() {
				c.Timeline[j].Timestamp = nil
			}
		}
	}

	if err := snap.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("invalid fixture: %w", err)
	}
	return snap, nil
}
