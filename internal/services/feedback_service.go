// Package services – FeedbackService
//
// This file implements the FeedbackService, which collects user ratings of
// generated content and aggregates them into quality signals: per-type
// summaries (average rating, distribution, common issues), low-rated content
// queues, and improvement areas extracted from poorly rated records.
//
// Feedback IDs combine a process-local counter with a UTC timestamp
// (feedback_{n}_{YYYYMMDDhhmmss}); collisions after a restart are resolved by
// advancing the counter until the insert succeeds. Ratings are validated
// before any write and are immutable afterward; only the addressed
// bookkeeping may change.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/repo"
)

// maxImprovementItems caps the issues reported per content type.
const maxImprovementItems = 5

// maxCommonIssues caps the issue labels reported in a summary.
const maxCommonIssues = 5

// FeedbackSummary aggregates the feedback in scope (one content type, or the
// whole store) into the quality metrics reported by the API.
type FeedbackSummary struct {
	// TotalFeedback is the number of records in scope.
	TotalFeedback int `json:"total_feedback"`
	// AverageRating is the mean rating, rounded to two decimals.
	AverageRating float64 `json:"average_rating"`
	// RatingDistribution maps every rating 1..5 to its count (empty when
	// there is no feedback in scope).
	RatingDistribution map[int]int `json:"rating_distribution"`
	// MostCommonIssues lists the most frequent issue labels, most common
	// first, capped at five.
	MostCommonIssues []IssueCount `json:"most_common_issues"`
	// PercentagePositive is the share of records rated 4 or 5, in percent,
	// rounded to two decimals.
	PercentagePositive float64 `json:"percentage_positive"`
}

// IssueCount pairs an issue label with the number of records reporting it.
type IssueCount struct {
	Issue string `json:"issue"`
	Count int    `json:"count"`
}

// FeedbackService provides feedback collection and aggregation operations.
type FeedbackService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// LowRatingThreshold is the default cutoff for GetLowRatedContent when
	// the caller does not supply one. Records rated strictly below it are
	// considered low rated.
	LowRatingThreshold int

	// Now returns the current time; overridable in tests.
	Now func() time.Time

	// counter feeds the sequential segment of generated feedback IDs.
	counter atomic.Int64
}

// NewFeedbackService constructs a FeedbackService with the conventional
// low-rating cutoff of 3.
func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db, LowRatingThreshold: 3, Now: time.Now}
}

// SubmitFeedback validates and stores one rating of a piece of generated
// content, returning the generated feedback ID. Ratings outside 1..5 return
// ErrInvalidRating before anything is written.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, contentID, contentType string, userID int64, rating int, comments string, issues []string) (string, error) {
	if rating < 1 || rating > 5 {
		return "", ErrInvalidRating
	}

	now := s.Now().UTC()
	for {
		id := fmt.Sprintf("feedback_%d_%s", s.counter.Add(1), now.Format(idTimestampFormat))
		rec := &domain.FeedbackRecord{
			ID:             id,
			ContentID:      contentID,
			ContentType:    contentType,
			UserID:         userID,
			Rating:         rating,
			Comments:       comments,
			SpecificIssues: domain.StringList(issues),
			SubmittedAt:    now,
		}
		err := repo.CreateFeedback(ctx, s.DB, rec)
		if err == nil {
			return id, nil
		}
		// A restart within the same second can replay counter values that
		// are already stored; advancing the counter resolves the collision.
		if !errors.Is(err, repo.ErrDuplicate) {
			return "", err
		}
	}
}

// GetFeedback fetches one record by ID, returning ErrFeedbackNotFound when
// absent.
func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (*domain.FeedbackRecord, error) {
	rec, err := repo.GetFeedback(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return rec, nil
}

// GetContentFeedback returns all feedback on one artifact, newest first.
func (s *FeedbackService) GetContentFeedback(ctx context.Context, contentID string) ([]domain.FeedbackRecord, error) {
	return repo.ListFeedbackByContent(ctx, s.DB, contentID)
}

// GetUserFeedback returns all feedback submitted by one user, newest first.
func (s *FeedbackService) GetUserFeedback(ctx context.Context, userID int64) ([]domain.FeedbackRecord, error) {
	return repo.ListFeedbackByUser(ctx, s.DB, userID)
}

// GetFeedbackByType returns all feedback for one content type, newest first.
func (s *FeedbackService) GetFeedbackByType(ctx context.Context, contentType string) ([]domain.FeedbackRecord, error) {
	return repo.ListFeedbackByType(ctx, s.DB, contentType)
}

// GetLowRatedContent returns records rated strictly below threshold, worst
// first. A threshold of zero or less falls back to the service default.
func (s *FeedbackService) GetLowRatedContent(ctx context.Context, threshold int) ([]domain.FeedbackRecord, error) {
	if threshold <= 0 {
		threshold = s.LowRatingThreshold
	}
	return repo.ListLowRatedFeedback(ctx, s.DB, threshold)
}

// GetFeedbackSummary aggregates the feedback for contentType (every record
// when contentType is empty) into a FeedbackSummary. An empty scope yields
// zeroed metrics and empty collections.
func (s *FeedbackService) GetFeedbackSummary(ctx context.Context, contentType string) (*FeedbackSummary, error) {
	records, err := repo.ListFeedbackByType(ctx, s.DB, contentType)
	if err != nil {
		return nil, err
	}

	summary := &FeedbackSummary{
		RatingDistribution: map[int]int{},
		MostCommonIssues:   []IssueCount{},
	}
	if len(records) == 0 {
		return summary, nil
	}

	for r := 1; r <= 5; r++ {
		summary.RatingDistribution[r] = 0
	}

	var sum, positive int
	issueCounts := map[string]int{}
	for _, rec := range records {
		sum += rec.Rating
		summary.RatingDistribution[rec.Rating]++
		if rec.Rating >= 4 {
			positive++
		}
		for _, issue := range rec.SpecificIssues {
			if issue = strings.TrimSpace(issue); issue != "" {
				issueCounts[issue]++
			}
		}
	}

	total := len(records)
	summary.TotalFeedback = total
	summary.AverageRating = round2(float64(sum) / float64(total))
	summary.PercentagePositive = round2(float64(positive) / float64(total) * 100)
	summary.MostCommonIssues = topIssues(issueCounts, maxCommonIssues)
	return summary, nil
}

// MarkAddressed flags a record as handled, storing the optional follow-up
// note. It reports whether a record was updated; an unknown ID is not an
// error. Re-flagging refreshes the follow-up and timestamp.
func (s *FeedbackService) MarkAddressed(ctx context.Context, id, followUp string) (bool, error) {
	var followUpPtr *string
	if followUp != "" {
		followUpPtr = &followUp
	}
	rows, err := repo.MarkFeedbackAddressed(ctx, s.DB, id, followUpPtr, s.Now().UTC())
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// IdentifyImprovementAreas extracts concrete complaints from poorly rated
// feedback (rating 2 or below), grouped by content type. Per type, each
// record contributes its issue labels and then its comment, deduplicated in
// first-seen order and capped at five items. Types without low-rated records
// are omitted.
func (s *FeedbackService) IdentifyImprovementAreas(ctx context.Context) (map[string][]string, error) {
	records, err := repo.ListFeedbackAtMost(ctx, s.DB, 2)
	if err != nil {
		return nil, err
	}

	areas := map[string][]string{}
	seen := map[string]map[string]bool{}
	add := func(contentType, item string) {
		item = strings.TrimSpace(item)
		if item == "" || len(areas[contentType]) >= maxImprovementItems || seen[contentType][item] {
			return
		}
		if seen[contentType] == nil {
			seen[contentType] = map[string]bool{}
		}
		seen[contentType][item] = true
		areas[contentType] = append(areas[contentType], item)
	}

	for _, rec := range records {
		for _, issue := range rec.SpecificIssues {
			add(rec.ContentType, issue)
		}
		add(rec.ContentType, rec.Comments)
	}
	return areas, nil
}

// topIssues returns the n most frequent issues, most common first with the
// label as tie-break for a deterministic order.
func topIssues(counts map[string]int, n int) []IssueCount {
	out := make([]IssueCount, 0, len(counts))
	for issue, count := range counts {
		out = append(out, IssueCount{Issue: issue, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Issue < out[j].Issue
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// round2 rounds to two decimal places for presentation-stable metrics.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
