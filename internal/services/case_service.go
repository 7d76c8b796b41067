// Package services – CaseService
//
// This file implements the CaseService, which manages legal cases and the
// documents attached to them. It validates case records, enforces that the
// owning lawyer exists before a case is created, and coordinates repository
// operations for fetching, listing (with pagination), attaching documents,
// and moving cases through their lifecycle.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/validate"
)

// caseStatuses enumerates the accepted lifecycle labels. "active" counts
// toward a lawyer's active caseload; "closed", "settled" and "dismissed"
// count as closed when computing the win rate.
var caseStatuses = map[string]bool{
	"active":    true,
	"pending":   true,
	"on_hold":   true,
	"closed":    true,
	"settled":   true,
	"dismissed": true,
}

// CaseService provides case-level operations: creation, lookup, pagination,
// status transitions, and attached-document management.
type CaseService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewCaseService constructs a CaseService.
func NewCaseService(db *gorm.DB) *CaseService {
	return &CaseService{DB: db}
}

// Create validates and inserts a new case. The owning lawyer must exist
// (ErrLawyerNotFound otherwise) and the case number must be unique
// (ErrDuplicateCase on collision).
func (s *CaseService) Create(ctx context.Context, c *domain.LegalCase) (*domain.LegalCase, error) {
	if err := validate.Case(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := repo.GetLawyer(ctx, s.DB, c.LawyerID); err != nil {
		if isNotFound(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	if c.Status == "" {
		c.Status = "active"
	}

	if err := repo.CreateCase(ctx, s.DB, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateCase
		}
		return nil, err
	}
	return c, nil
}

// Get fetches a case by ID, returning ErrCaseNotFound when absent.
func (s *CaseService) Get(ctx context.Context, id int64) (*domain.LegalCase, error) {
	c, err := repo.GetCase(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetByNumber fetches a case by its court case number, returning
// ErrCaseNotFound when absent.
func (s *CaseService) GetByNumber(ctx context.Context, caseNumber string) (*domain.LegalCase, error) {
	c, err := repo.GetCaseByNumber(ctx, s.DB, caseNumber)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListForLawyer returns a page of the lawyer's cases, filing date descending.
// The lawyer must exist (ErrLawyerNotFound otherwise). It applies defaults
// for invalid page/pageSize and returns the total count.
func (s *CaseService) ListForLawyer(ctx context.Context, lawyerID int64, page, pageSize int) ([]domain.LegalCase, int64, error) {
	if _, err := repo.GetLawyer(ctx, s.DB, lawyerID); err != nil {
		if isNotFound(err) {
			return nil, 0, ErrLawyerNotFound
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountLawyerCases(ctx, s.DB, lawyerID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.LegalCase{}, 0, nil
	}

	items, err := repo.ListLawyerCasesPage(ctx, s.DB, lawyerID, offset, pageSize)
	return items, total, err
}

// UpdateStatus moves a case to a new lifecycle status, optionally recording
// its outcome. Unknown statuses return ErrValidation; a missing case returns
// ErrCaseNotFound. The updated case is returned.
func (s *CaseService) UpdateStatus(ctx context.Context, id int64, status string, outcome *string) (*domain.LegalCase, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !caseStatuses[status] {
		return nil, fmt.Errorf("%w: unknown case status %q", ErrValidation, status)
	}

	if err := repo.UpdateCaseStatus(ctx, s.DB, id, status, outcome); err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// AttachDocument stores a document under the given case. The case must exist
// (ErrCaseNotFound otherwise); the document inherits the case's lawyer when
// no owner is set.
func (s *CaseService) AttachDocument(ctx context.Context, caseID int64, d *domain.LegalDocument) (*domain.LegalDocument, error) {
	c, err := repo.GetCase(ctx, s.DB, caseID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}

	d.CaseID = &c.ID
	if d.LawyerID == 0 {
		d.LawyerID = c.LawyerID
	}
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.DocumentType) == "" {
		return nil, fmt.Errorf("%w: document_type and title are required", ErrValidation)
	}

	if err := repo.CreateDocument(ctx, s.DB, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDocuments returns every document attached to the case, newest first.
// The case must exist (ErrCaseNotFound otherwise).
func (s *CaseService) ListDocuments(ctx context.Context, caseID int64) ([]domain.LegalDocument, error) {
	if _, err := repo.GetCase(ctx, s.DB, caseID); err != nil {
		if isNotFound(err) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return repo.ListCaseDocuments(ctx, s.DB, caseID)
}
