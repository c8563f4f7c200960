package course

import (
	"strings"
	"time"
)

// Course is a recurring weekly session on the studio timetable.
type Course struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Weekday      int       `firestore:"weekday" json:"weekday"` // 0=Sunday .. 6=Saturday
	Time         string    `firestore:"time" json:"time"`       // "HH:MM"
	LocationName string    `firestore:"locationName" json:"locationName"`
	MapsURL      string    `firestore:"mapsUrl,omitempty" json:"mapsUrl,omitempty"`
	PlaylistURL  string    `firestore:"playlistUrl,omitempty" json:"playlistUrl,omitempty"`
	Visible      bool      `firestore:"visible" json:"visible"`
	Archived     bool      `firestore:"archived" json:"archived"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CreateCourseInput represents input for creating a course
type CreateCourseInput struct {
	Name         string `json:"name"`
	Weekday      int    `json:"weekday"`
	Time         string `json:"time"`
	LocationName string `json:"locationName"`
	MapsURL      string `json:"mapsUrl,omitempty"`
	PlaylistURL  string `json:"playlistUrl,omitempty"`
	Visible      *bool  `json:"visible,omitempty"`
}

func (in *CreateCourseInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Time = strings.TrimSpace(in.Time)
	in.LocationName = strings.TrimSpace(in.LocationName)
	in.MapsURL = strings.TrimSpace(in.MapsURL)
	in.PlaylistURL = strings.TrimSpace(in.PlaylistURL)
}

// UpdateCourseInput represents input for updating a course
type UpdateCourseInput struct {
	Name         *string `json:"name,omitempty"`
	Weekday      *int    `json:"weekday,omitempty"`
	Time         *string `json:"time,omitempty"`
	LocationName *string `json:"locationName,omitempty"`
	MapsURL      *string `json:"mapsUrl,omitempty"`
	PlaylistURL  *string `json:"playlistUrl,omitempty"`
	Visible      *bool   `json:"visible,omitempty"`
}

func (in *UpdateCourseInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Time != nil {
		*in.Time = strings.TrimSpace(*in.Time)
	}
	if in.LocationName != nil {
		*in.LocationName = strings.TrimSpace(*in.LocationName)
	}
	if in.MapsURL != nil {
		*in.MapsURL = strings.TrimSpace(*in.MapsURL)
	}
	if in.PlaylistURL != nil {
		*in.PlaylistURL = strings.TrimSpace(*in.PlaylistURL)
	}
}

// ListCoursesInput represents input for listing courses
type ListCoursesInput struct {
	IncludeArchived bool
	VisibleOnly     bool
}
