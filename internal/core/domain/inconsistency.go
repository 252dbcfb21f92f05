package domain

import "time"

// InconsistencyKind represents the kind of cross-store inconsistency
type InconsistencyKind string

const (
	// InconsistencyOrphanedBlob is a blob without metadata
	InconsistencyOrphanedBlob InconsistencyKind = "orphaned_blob"
	// InconsistencyDanglingRecord is metadata whose blob is gone
	InconsistencyDanglingRecord InconsistencyKind = "dangling_record"
)

// InconsistencyEvent is emitted when a multi-step operation leaves the stores out of sync
type InconsistencyEvent struct {
	Kind       InconsistencyKind `json:"kind"`
	FileID     string            `json:"file_id"`
	FileName   string            `json:"file_name"`
	BlobKey    string            `json:"blob_key"`
	URL        string            `json:"url"`
	Cause      string            `json:"cause"`
	DetectedAt time.Time         `json:"detected_at"`
}
