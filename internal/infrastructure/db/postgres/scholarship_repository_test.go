package postgres

import (
	"reflect"
	"strings"
	"testing"

	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestBuildListQuery_NoFilters(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{})

	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if strings.Contains(query, "AND") {
		t.Fatalf("expected no conditions, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Fatalf("expected newest-first ordering, got %q", query)
	}
	if strings.Contains(query, "LIMIT") {
		t.Fatalf("expected no limit clause, got %q", query)
	}
}

func TestBuildListQuery_AmountRangeAndCategory(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{
		Category:  "Engineering",
		MinAmount: float64Ptr(1000),
		MaxAmount: float64Ptr(5000),
	})

	if !strings.Contains(query, "category = $1") {
		t.Fatalf("missing category predicate: %q", query)
	}
	if !strings.Contains(query, "amount >= $2") {
		t.Fatalf("missing lower bound predicate: %q", query)
	}
	if !strings.Contains(query, "amount <= $3") {
		t.Fatalf("missing upper bound predicate: %q", query)
	}
	want := []any{"Engineering", float64(1000), float64(5000)}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %v, got %v", want, args)
	}
}

func TestBuildListQuery_MinAmountOnly(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{MinAmount: float64Ptr(2500)})

	if !strings.Contains(query, "amount >= $1") {
		t.Fatalf("missing lower bound predicate: %q", query)
	}
	if strings.Contains(query, "amount <=") {
		t.Fatalf("unexpected upper bound predicate: %q", query)
	}
	if !reflect.DeepEqual(args, []any{float64(2500)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

// A zero-value bound is a real filter, distinct from an absent one.
func TestBuildListQuery_ZeroMaxAmount(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{MaxAmount: float64Ptr(0)})

	if !strings.Contains(query, "amount <= $1") {
		t.Fatalf("missing upper bound predicate: %q", query)
	}
	if !reflect.DeepEqual(args, []any{float64(0)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListQuery_LocationAndSearch(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{
		Location: "USA",
		Search:   "stem",
	})

	if !strings.Contains(query, "location ILIKE $1") {
		t.Fatalf("missing location predicate: %q", query)
	}
	// Search matches title, provider and description against one placeholder.
	if !strings.Contains(query, "(title ILIKE $2 OR provider ILIKE $2 OR description ILIKE $2)") {
		t.Fatalf("missing search predicate: %q", query)
	}
	want := []any{"%USA%", "%stem%"}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %v, got %v", want, args)
	}
}

func TestBuildListQuery_Limit(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{
		Category: "Arts",
		Limit:    10,
	})

	if !strings.HasSuffix(query, "LIMIT $2") {
		t.Fatalf("expected limit as final clause, got %q", query)
	}
	want := []any{"Arts", 10}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %v, got %v", want, args)
	}
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	query, args := buildListQuery(ports.ScholarshipFilter{
		Category:  "Engineering",
		MinAmount: float64Ptr(1000),
		MaxAmount: float64Ptr(5000),
		Location:  "usa",
		Search:    "robotics",
		Limit:     5,
	})

	for _, predicate := range []string{
		"category = $1",
		"amount >= $2",
		"amount <= $3",
		"location ILIKE $4",
		"(title ILIKE $5 OR provider ILIKE $5 OR description ILIKE $5)",
		"ORDER BY created_at DESC",
		"LIMIT $6",
	} {
		if !strings.Contains(query, predicate) {
			t.Fatalf("missing %q in %q", predicate, query)
		}
	}

	want := []any{"Engineering", float64(1000), float64(5000), "%usa%", "%robotics%", 5}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected args %v, got %v", want, args)
	}
}
