package app

import "fmt"

// ValidationError rejects bad ingestion input before any store mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a read or write failure of the underlying SQLite store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IngestionError marks an ingestion run that was rolled back. No drive or
// file rows from the run remain visible.
type IngestionError struct {
	Drive string
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion of %q failed: %v", e.Drive, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }
