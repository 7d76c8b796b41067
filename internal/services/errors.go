// Package services implements the application's use cases on top of the
// repository layer: lawyer and case management, AI-assisted legal work
// orchestration, human review of generated content, and feedback analysis.
//
// Each service is constructed with its dependencies (a *gorm.DB handle and,
// where relevant, the agents that wrap the generation backend) and exposes
// context-aware methods that the HTTP layer calls directly. Sentinel errors
// below classify failures so handlers can map them onto HTTP status codes.
package services

import "errors"

var (
	// ErrLawyerNotFound indicates the referenced lawyer does not exist.
	ErrLawyerNotFound = errors.New("lawyer not found")

	// ErrCaseNotFound indicates the referenced case does not exist.
	ErrCaseNotFound = errors.New("case not found")

	// ErrDocumentNotFound indicates the referenced document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrPrecedentNotFound indicates the referenced precedent does not exist.
	ErrPrecedentNotFound = errors.New("precedent not found")

	// ErrApprovalNotFound indicates the referenced approval request does not exist.
	ErrApprovalNotFound = errors.New("approval request not found")

	// ErrFeedbackNotFound indicates the referenced feedback record does not exist.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrAlreadyDecided indicates an approve or reject attempt on a request
	// that has already reached a terminal status. Decisions are immutable.
	ErrAlreadyDecided = errors.New("approval request already decided")

	// ErrInvalidRating indicates a feedback rating outside the 1-5 scale.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUnsupportedDocumentType indicates a draft request for a document
	// type the drafter does not produce.
	ErrUnsupportedDocumentType = errors.New("unsupported document type")

	// ErrValidation wraps field-level validation failures on input records.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateLawyer indicates a bar number collision on registration.
	ErrDuplicateLawyer = errors.New("lawyer with this bar number already exists")

	// ErrDuplicateCase indicates a case number collision on creation.
	ErrDuplicateCase = errors.New("case with this case number already exists")

	// ErrGeneration wraps failures from the generation backend. The request
	// that triggered generation produced no usable output and nothing beyond
	// previously completed steps was persisted.
	ErrGeneration = errors.New("content generation failed")

	// ErrPersistence wraps storage failures on writes that gate an operation's
	// success (as opposed to best-effort record keeping, which only logs).
	ErrPersistence = errors.New("persistence failed")
)
