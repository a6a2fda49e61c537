package ledger

import "errors"

// Typed failures surfaced to the API layer. Each maps to a stable HTTP
// status at the route boundary; the ledger itself is transport-agnostic.
var (
	// ErrCourseNotFound is returned when a course is absent, soft-deleted or unpublished
	ErrCourseNotFound = errors.New("course not found or not published")

	// ErrAlreadyEnrolled is returned on a duplicate enroll for the same (user, course)
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	// ErrNotEnrolled gates progress operations on an existing enrollment
	ErrNotEnrolled = errors.New("not enrolled in this course")

	// ErrConflict is returned when a storage uniqueness constraint fires unexpectedly
	ErrConflict = errors.New("conflicting progress record")
)
