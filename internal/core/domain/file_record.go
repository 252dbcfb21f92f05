package domain

import (
	"time"
)

// FileRecord represents the metadata of an uploaded object
type FileRecord struct {
	ID         string
	FileName   string
	URL        string
	UploadDate time.Time
	OwnerID    string
}

// BlobKey derives the blob storage key of a file from its id and name.
// The key is stable so an orphaned blob can always be matched back to its id.
func BlobKey(id, fileName string) string {
	return id + "/" + fileName
}
