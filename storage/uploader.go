package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores published artifacts (schedule exports) in object storage.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// ScheduleKey is the object key a tournament's schedule export is stored under.
func ScheduleKey(tournamentID string) string {
	return "schedules/" + tournamentID + ".json"
}
