package models

import "time"

// Event is a calendar event. EndTime is optional; when present it is kept
// strictly after Date by the time-edit rules in the calendar package.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Color       string     `json:"color,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Title       string     `json:"title"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	EndTime     *time.Time `json:"endTime"`
}

// EventPatch carries partial event updates.
type EventPatch struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Color       *string    `json:"color"`
	EndTime     *time.Time `json:"endTime"`
}
