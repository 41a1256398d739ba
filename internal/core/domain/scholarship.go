package domain

import (
	"errors"
	"time"
)

var ErrScholarshipNotFound = errors.New("scholarship not found")
var ErrMissingFields = errors.New("all fields are required")

// Scholarship is the core listing aggregate. All fields are mandatory on
// create and fully replaced on update.
type Scholarship struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Deadline    time.Time `json:"deadline"`
	Eligibility string    `json:"eligibility"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminStats aggregates the dashboard counters. TotalUsers counts only
// regular accounts, not admins.
type AdminStats struct {
	TotalScholarships int64   `json:"totalScholarships"`
	TotalUsers        int64   `json:"totalUsers"`
	TotalAmount       float64 `json:"totalAmount"`
}
