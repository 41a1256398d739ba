package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

type BookmarkService struct {
	repo ports.BookmarkRepository
	log  zerolog.Logger
}

func NewBookmarkService(repo ports.BookmarkRepository, log zerolog.Logger) *BookmarkService {
	return &BookmarkService{repo: repo, log: log}
}

// List returns the caller's bookmarked scholarships, most recently
// bookmarked first.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]*domain.Scholarship, error) {
	return s.repo.ListScholarships(ctx, userID)
}

// Add creates the bookmark pair. The unique constraint lives in the storage
// layer; a duplicate surfaces here as domain.ErrAlreadyBookmarked, never as a
// generic storage error.
func (s *BookmarkService) Add(ctx context.Context, userID, scholarshipID int64) error {
	if err := s.repo.Insert(ctx, userID, scholarshipID); err != nil {
		if errors.Is(err, domain.ErrAlreadyBookmarked) {
			return err
		}
		s.log.Error().Err(err).Int64("user_id", userID).Int64("scholarship_id", scholarshipID).Msg("failed to add bookmark")
		return err
	}

	s.log.Info().Int64("user_id", userID).Int64("scholarship_id", scholarshipID).Msg("bookmark added")
	return nil
}

// Remove deletes the bookmark pair. Removing an absent bookmark succeeds.
func (s *BookmarkService) Remove(ctx context.Context, userID, scholarshipID int64) error {
	if err := s.repo.Delete(ctx, userID, scholarshipID); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", userID).Int64("scholarship_id", scholarshipID).Msg("bookmark removed")
	return nil
}
