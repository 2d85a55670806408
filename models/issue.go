package models

import (
	"encoding/base64"
	"strings"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Roads        IssueCategory = "Roads"
	Water        IssueCategory = "Water"
	Sanitation   IssueCategory = "Sanitation"
	Electricity  IssueCategory = "Electricity"
	Streetlights IssueCategory = "Streetlights"
	Parks        IssueCategory = "Parks"
	Other        IssueCategory = "Other"
)

// IssueStatus enum. The lifecycle is ordered Reported -> Confirmed ->
// In Progress -> Resolved, but transitions are unconstrained: an admin
// may set any value.
type IssueStatus string

const (
	Reported   IssueStatus = "Reported"
	Confirmed  IssueStatus = "Confirmed"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

// IssueUrgency enum
type IssueUrgency string

const (
	Low    IssueUrgency = "Low"
	Medium IssueUrgency = "Medium"
	High   IssueUrgency = "High"
)

// MaxImageBytes caps the decoded size of an inline image attachment.
const MaxImageBytes = 2 * 1024 * 1024

// Issue represents a civic issue reported by a user. The id doubles as the
// Mongo _id and is derived from the creation time in milliseconds.
type Issue struct {
	ID           int64         `bson:"_id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Category     IssueCategory `bson:"category" json:"category"`
	Location     string        `bson:"location" json:"location"`
	Urgency      IssueUrgency  `bson:"urgency" json:"urgency"`
	Description  string        `bson:"description" json:"description"`
	Status       IssueStatus   `bson:"status" json:"status"`
	ReportedBy   string        `bson:"reportedBy" json:"reportedBy"`
	Timestamp    time.Time     `bson:"timestamp" json:"timestamp"`
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
	ImageDataURL *string       `bson:"imageDataURL,omitempty" json:"imageDataURL,omitempty"`
}

func ValidCategory(c string) bool {
	switch IssueCategory(c) {
	case Roads, Water, Sanitation, Electricity, Streetlights, Parks, Other:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Reported, Confirmed, InProgress, Resolved:
		return true
	}
	return false
}

func ValidUrgency(u string) bool {
	switch IssueUrgency(u) {
	case Low, Medium, High:
		return true
	}
	return false
}

// ValidateImageDataURL checks that an attachment is a base64 image data URL
// whose decoded source is at most MaxImageBytes.
func ValidateImageDataURL(dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return ErrInvalidImage
	}

	marker := ";base64,"
	idx := strings.Index(dataURL, marker)
	if idx < 0 {
		return ErrInvalidImage
	}

	decoded, err := base64.StdEncoding.DecodeString(dataURL[idx+len(marker):])
	if err != nil {
		return ErrInvalidImage
	}
	if len(decoded) > MaxImageBytes {
		return ErrImageTooLarge
	}

	return nil
}
