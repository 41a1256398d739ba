package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

type ScholarshipService struct {
	repo ports.ScholarshipRepository
	log  zerolog.Logger
}

func NewScholarshipService(repo ports.ScholarshipRepository, log zerolog.Logger) *ScholarshipService {
	return &ScholarshipService{repo: repo, log: log}
}

func (s *ScholarshipService) List(ctx context.Context, filter ports.ScholarshipFilter) ([]*domain.Scholarship, error) {
	return s.repo.List(ctx, filter)
}

func (s *ScholarshipService) Get(ctx context.Context, id int64) (*domain.Scholarship, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new listing. Every field is mandatory; a zero amount is
// treated as absent.
func (s *ScholarshipService) Create(ctx context.Context, in ports.ScholarshipInput, createdBy int64) (int64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, &domain.Scholarship{
		Title:       in.Title,
		Provider:    in.Provider,
		Category:    in.Category,
		Amount:      in.Amount,
		Deadline:    in.Deadline,
		Eligibility: in.Eligibility,
		Location:    in.Location,
		Description: in.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create scholarship")
		return 0, err
	}

	s.log.Info().Int64("scholarship_id", id).Int64("created_by", createdBy).Msg("scholarship created")
	return id, nil
}

// Update fully replaces the mutable fields. An id with no matching row still
// succeeds; callers cannot distinguish the two outcomes.
func (s *ScholarshipService) Update(ctx context.Context, id int64, in ports.ScholarshipInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}

	s.log.Info().Int64("scholarship_id", id).Msg("scholarship updated")
	return nil
}

// Delete removes a listing. Like Update, a missing id is silent success.
func (s *ScholarshipService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("scholarship_id", id).Msg("scholarship deleted")
	return nil
}

func validateInput(in ports.ScholarshipInput) error {
	if in.Title == "" || in.Provider == "" || in.Category == "" || in.Amount <= 0 ||
		in.Deadline.IsZero() || in.Eligibility == "" || in.Location == "" || in.Description == "" {
		return domain.ErrMissingFields
	}
	return nil
}
