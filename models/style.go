package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus         = errors.New("unknown status")
	ErrUnknownCategory       = errors.New("unknown category")
	ErrUnknownTimelineStatus = errors.New("unknown timeline status")
)

// Style is the label, color and icon a client uses to render an enum value
type Style struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

var statusStyles = map[Status]Style{
	StatusAwaiting: {Label: "Bekliyor", Color: "#F59E0B", Icon: "clock"},
	StatusInReview: {Label: "İnceleniyor", Color: "#1488ac", Icon: "search"},
	StatusResolved: {Label: "Çözüldü", Color: "#10B981", Icon: "check-circle"},
	StatusRejected: {Label: "Reddedildi", Color: "#EF4444", Icon: "x-circle"},
}

var categoryStyles = map[CategoryID]Style{
	CategoryRoad:        {Label: "Yol", Color: "#EF4444", Icon: "car"},
	CategoryTransport:   {Label: "Ulaşım", Color: "#3B82F6", Icon: "bus"},
	CategoryCleanliness: {Label: "Temizlik", Color: "#10B981", Icon: "trash"},
	CategoryLighting:    {Label: "Aydınlatma", Color: "#F59E0B", Icon: "lightbulb"},
	CategoryNoise:       {Label: "Gürültü", Color: "#8B5CF6", Icon: "volume-x"},
	CategoryWater:       {Label: "Su", Color: "#06B6D4", Icon: "droplet"},
	CategoryParks:       {Label: "Parklar", Color: "#22C55E", Icon: "tree"},
}

var timelineStyles = map[TimelineStatus]Style{
	TimelineCompleted: {Label: "Tamamlandı", Color: "#10B981", Icon: "check-circle"},
	TimelineCurrent:   {Label: "Devam ediyor", Color: "#1488ac", Icon: "clock"},
	TimelinePending:   {Label: "Bekliyor", Color: "#B8BFC8", Icon: "circle"},
}

// Valid reports whether s is one of the four complaint statuses
func (s Status) Valid() bool {
	_, ok := statusStyles[s]
	return ok
}

// Style returns the display style for s
func (s Status) Style() (Style, error) {
	st, ok := statusStyles[s]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (c CategoryID) Valid() bool {
	_, ok := categoryStyles[c]
	return ok
}

func (c CategoryID) Style() (Style, error) {
	st, ok := categoryStyles[c]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return st, nil
}

func (t TimelineStatus) Valid() bool {
	_, ok := timelineStyles[t]
	return ok
}

func (t TimelineStatus) Style() (Style, error) {
	st, ok := timelineStyles[t]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownTimelineStatus, t)
	}
	return st, nil
}
