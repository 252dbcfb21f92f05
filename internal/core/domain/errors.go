package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is an error thrown when an input is malformed or missing
var ErrValidation = errors.New("validation error")

// ErrMissingID is an error thrown when a file id is not provided
var ErrMissingID = fmt.Errorf("%w: file id is required", ErrValidation)

// ErrMissingFileName is an error thrown when a file name is not provided
var ErrMissingFileName = fmt.Errorf("%w: file name is required", ErrValidation)

// ErrEmptyFile is an error thrown when uploaded content is empty
var ErrEmptyFile = fmt.Errorf("%w: file is empty", ErrValidation)

// ErrFileNotFound is an error thrown when file metadata or its blob is not found
var ErrFileNotFound = errors.New("file not found")

// ErrMethodNotAllowed is an error thrown when a route does not support the method
var ErrMethodNotAllowed = errors.New("method not allowed")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrDependency is an error thrown when the blob store or metadata store fails
var ErrDependency = errors.New("dependency error")

// ErrOrphanedBlob is an error thrown when a blob was written but its metadata was not
var ErrOrphanedBlob = errors.New("blob stored without metadata")

// ErrPartialConsistency is an error thrown when a blob was deleted but its metadata was not
var ErrPartialConsistency = errors.New("partial delete: blob removed, metadata kept")

// OrphanedBlobError is returned by an upload whose metadata insert failed after the blob write.
// The blob is left in place under BlobKey so the insert can be retried.
type OrphanedBlobError struct {
	FileID  string
	BlobKey string
	URL     string
	Err     error
}

func (e *OrphanedBlobError) Error() string {
	return fmt.Sprintf("file %s: %s at %s: %v", e.FileID, ErrOrphanedBlob, e.BlobKey, e.Err)
}

// Unwrap exposes ErrOrphanedBlob, ErrDependency and the underlying cause
func (e *OrphanedBlobError) Unwrap() []error {
	return []error{ErrOrphanedBlob, ErrDependency, e.Err}
}
