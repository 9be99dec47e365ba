package store

import "cityreport-be/models"

// DerivedProgress is the share of completed milestones as a 0-100 percentage,
// rounded down. An empty timeline has no progress.
func DerivedProgress(timeline []models.TimelineEvent) int {
	if len(timeline) == 0 {
		return 0
	}
	completed := 0
	for _, ev := range timeline {
		if ev.Status == models.TimelineCompleted {
			completed++
		}
	}
	return completed * 100 / len(timeline)
}

// CurrentStep returns the milestone being worked on, if any
func CurrentStep(timeline []models.TimelineEvent) (models.TimelineEvent, bool) {
	for _, ev := range timeline {
		if ev.Status == models.TimelineCurrent {
			return ev, true
		}
	}
	return models.TimelineEvent{}, false
}
