package models

import "time"

// Podcast is one published episode, based on the 'podcasts' table
type Podcast struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	CoverImageURL string    `json:"cover_image_url" db:"cover_image_url"`
	AudioURL      *string   `json:"audio_url,omitempty" db:"audio_url"`
	VideoURL      *string   `json:"video_url,omitempty" db:"video_url"`
	PublishedDate time.Time `json:"published_date" db:"published_date"`
	Duration      *string   `json:"duration,omitempty" db:"duration"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PlayURL returns the audio URL, falling back to the video URL.
// Empty means the episode has nothing playable yet.
func (p Podcast) PlayURL() string {
	if p.AudioURL != nil && *p.AudioURL != "" {
		return *p.AudioURL
	}
	if p.VideoURL != nil {
		return *p.VideoURL
	}
	return ""
}

// EventStatus is the lifecycle state of an event
type EventStatus string

// Event statuses
const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOngoing  EventStatus = "ongoing"
	EventStatusPast     EventStatus = "past"
)

// Valid reports whether s is one of the three known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusPast:
		return true
	}
	return false
}

// Display returns the status used for presentation; unknown values are shown as past.
func (s EventStatus) Display() EventStatus {
	if s.Valid() {
		return s
	}
	return EventStatusPast
}

// Event is a workshop, seminar or networking event, based on the 'events' table
type Event struct {
	ID          string      `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	EventDate   time.Time   `json:"event_date" db:"event_date"`
	Location    string      `json:"location" db:"location"`
	ImageURL    *string     `json:"image_url,omitempty" db:"image_url"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
