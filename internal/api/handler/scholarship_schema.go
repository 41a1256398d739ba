package handler

import "time"

const deadlineLayout = "2006-01-02"

// scholarshipRequest carries the full field set for create and update. Every
// field is mandatory; validation failure is reported as a single
// "all fields required" error rather than per-field messages.
type scholarshipRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Provider    string  `json:"provider"    validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Deadline    string  `json:"deadline"    validate:"required,datetime=2006-01-02"`
	Eligibility string  `json:"eligibility" validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	Description string  `json:"description" validate:"required"`
}

// scholarshipResponse is the transport view of a listing. Deadline is a plain
// calendar date; it intentionally carries no time component.
type scholarshipResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Deadline    string    `json:"deadline"`
	Eligibility string    `json:"eligibility"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type createScholarshipResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}
