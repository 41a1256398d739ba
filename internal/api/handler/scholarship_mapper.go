package handler

import (
	"time"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

// --- Request → Service input ---

func toScholarshipInput(req scholarshipRequest) ports.ScholarshipInput {
	// The layout is enforced by the request validator; a parse failure here
	// leaves Deadline zero, which the service rejects.
	deadline, _ := time.Parse(deadlineLayout, req.Deadline)
	return ports.ScholarshipInput{
		Title:       req.Title,
		Provider:    req.Provider,
		Category:    req.Category,
		Amount:      req.Amount,
		Deadline:    deadline,
		Eligibility: req.Eligibility,
		Location:    req.Location,
		Description: req.Description,
	}
}

// --- Domain → HTTP response ---

func toScholarshipResponse(s *domain.Scholarship) scholarshipResponse {
	return scholarshipResponse{
		ID:          s.ID,
		Title:       s.Title,
		Provider:    s.Provider,
		Category:    s.Category,
		Amount:      s.Amount,
		Deadline:    s.Deadline.Format(deadlineLayout),
		Eligibility: s.Eligibility,
		Location:    s.Location,
		Description: s.Description,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt.UTC(),
	}
}

func toScholarshipListResponse(items []*domain.Scholarship) []scholarshipResponse {
	out := make([]scholarshipResponse, len(items))
	for i, s := range items {
		out[i] = toScholarshipResponse(s)
	}
	return out
}
