package model

import "time"

// PlayerRecord is a registered player as held by the player directory
type PlayerRecord struct {
	Username       string // directory key (immutable)
	Password       string // opaque, never hashed or returned by the API
	Rating         int
	SuspicionCount int
	IsAdmin        bool
	BanReason      string // set when an automatic ban fires
	CreatedAt      time.Time
}

// ReportStatus is the moderation outcome of a report
type ReportStatus string

const (
	ReportWarned ReportStatus = "WARNED"
	ReportBanned ReportStatus = "BANNED"
)

// ReportResult is returned for every report event
type ReportResult struct {
	Status ReportStatus
	Count  int // post-increment suspicion count
}
