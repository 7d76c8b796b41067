// Package services – LawyerService
//
// This file implements the LawyerService, which manages lawyer registration
// and lookup. It validates incoming records (required fields, bar number,
// contact formats), normalizes bar numbers to uppercase, and coordinates
// repository operations for creating and listing (with pagination) lawyers.
//
// Service-level errors (e.g., ErrLawyerNotFound, ErrDuplicateLawyer) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
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

// LawyerRepo defines the repository contract required by LawyerService.
// Implementations are responsible for persistence of lawyer records.
type LawyerRepo interface {
	// CreateLawyer inserts a new lawyer row, assigning its ID.
	CreateLawyer(ctx context.Context, db *gorm.DB, lawyer *domain.Lawyer) error

	// GetLawyer fetches a lawyer by ID.
	GetLawyer(ctx context.Context, db *gorm.DB, id int64) (*domain.Lawyer, error)

	// GetLawyerByBarNumber fetches a lawyer by bar number.
	GetLawyerByBarNumber(ctx context.Context, db *gorm.DB, barNumber string) (*domain.Lawyer, error)

	// CountLawyers returns the total number of matching lawyers for pagination.
	CountLawyers(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string) (int64, error)

	// ListLawyersPage returns a page of lawyers matching the optional filters.
	ListLawyersPage(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string, offset, limit int) ([]domain.Lawyer, error)
}

// LawyerService provides lawyer-level operations such as registering,
// fetching, and listing lawyer profiles. It enforces record validation
// and bar number uniqueness.
type LawyerService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the lawyer repository used by this service.
	Repo LawyerRepo
}

// NewLawyerService constructs a LawyerService.
func NewLawyerService(db *gorm.DB, r LawyerRepo) *LawyerService {
	return &LawyerService{DB: db, Repo: r}
}

// Register validates and inserts a new lawyer. The bar number is normalized
// to uppercase before storage so lookups are case-insensitive in practice.
// Invalid records return ErrValidation-wrapped messages; a bar number
// collision returns ErrDuplicateLawyer.
func (s *LawyerService) Register(ctx context.Context, l *domain.Lawyer) (*domain.Lawyer, error) {
	if err := validate.Lawyer(l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	l.BarNumber = strings.ToUpper(strings.TrimSpace(l.BarNumber))

	if err := s.Repo.CreateLawyer(ctx, s.DB, l); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateLawyer
		}
		return nil, err
	}
	return l, nil
}

// Get fetches a lawyer by ID, returning ErrLawyerNotFound when absent.
func (s *LawyerService) Get(ctx context.Context, id int64) (*domain.Lawyer, error) {
	l, err := s.Repo.GetLawyer(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return l, nil
}

// GetByBarNumber fetches a lawyer by bar number (case-insensitive),
// returning ErrLawyerNotFound when absent.
func (s *LawyerService) GetByBarNumber(ctx context.Context, barNumber string) (*domain.Lawyer, error) {
	l, err := s.Repo.GetLawyerByBarNumber(ctx, s.DB, strings.ToUpper(strings.TrimSpace(barNumber)))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLawyerNotFound
		}
		return nil, err
	}
	return l, nil
}

// ListPage returns a page of lawyers matching the optional practice area and
// jurisdiction filters. It applies defaults for invalid page/pageSize and
// returns the total count.
func (s *LawyerService) ListPage(ctx context.Context, practiceArea, jurisdiction string, page, pageSize int) ([]domain.Lawyer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountLawyers(ctx, s.DB, practiceArea, jurisdiction)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Lawyer{}, 0, nil
	}

	items, err := s.Repo.ListLawyersPage(ctx, s.DB, practiceArea, jurisdiction, offset, pageSize)
	return items, total, err
}

// isNotFound reports whether err represents a missing record, regardless of
// whether it surfaced as the repo sentinel or the raw gorm error.
func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
