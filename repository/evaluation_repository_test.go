package repository

import (
	"testing"

	"loan-engine/domain"
)

func TestEvaluationRepositoryMemory_SaveAndRecent(t *testing.T) {
	repo := NewEvaluationRepositoryMemory()

	for i := 1; i <= 3; i++ {
		err := repo.Save(
			domain.LoanParameters{LoanAmount: float64(i * 1000), LoanTermMonths: 12},
			domain.EligibilityResult{Score: i * 10},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records := repo.Recent(2)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Newest first.
	if records[0].Result.Score != 30 || records[1].Result.Score != 20 {
		t.Errorf("expected newest-first ordering, got scores %d, %d",
			records[0].Result.Score, records[1].Result.Score)
	}

	if records[0].ID == "" || records[0].ID == records[1].ID {
		t.Errorf("expected distinct non-empty ids")
	}
	if records[0].CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be set")
	}
}

func TestEvaluationRepositoryMemory_RecentLimits(t *testing.T) {
	repo := NewEvaluationRepositoryMemory()

	if got := repo.Recent(5); len(got) != 0 {
		t.Errorf("empty repo: expected 0 records, got %d", len(got))
	}

	_ = repo.Save(domain.LoanParameters{LoanAmount: 1000}, domain.EligibilityResult{})

	if got := repo.Recent(0); len(got) != 1 {
		t.Errorf("limit 0 should return everything, got %d", len(got))
	}
	if got := repo.Recent(10); len(got) != 1 {
		t.Errorf("limit above size should return everything, got %d", len(got))
	}
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get("missing"); ok {
		t.Errorf("expected miss for absent key")
	}

	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Errorf("expected hit with value v, got %q, %v", val, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}
