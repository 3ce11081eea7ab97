package report

import "errors"

var (
	// ErrStorageFailure marks a failed transactional write; the report was
	// not persisted and no notification was triggered.
	ErrStorageFailure = errors.New("report storage failure")
)
