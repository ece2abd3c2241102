package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"loan-engine/domain"
)

// EvaluationRecord is one stored eligibility evaluation.
type EvaluationRecord struct {
	ID        string                   `json:"id"`
	Params    domain.LoanParameters    `json:"params"`
	Result    domain.EligibilityResult `json:"result"`
	CreatedAt time.Time                `json:"created_at"`
}

// EvaluationRepository records eligibility evaluations.
type EvaluationRepository interface {
	Save(params domain.LoanParameters, result domain.EligibilityResult) error
	Recent(limit int) []EvaluationRecord
}

// maxStoredEvaluations bounds the in-memory history.
const maxStoredEvaluations = 1000

// EvaluationRepositoryMemory is an in-memory EvaluationRepository. The
// engine owns no persistence; history lives only for the process lifetime.
type EvaluationRepositoryMemory struct {
	mu      sync.RWMutex
	records []EvaluationRecord
}

// NewEvaluationRepositoryMemory creates an empty in-memory repository.
func NewEvaluationRepositoryMemory() *EvaluationRepositoryMemory {
	return &EvaluationRepositoryMemory{}
}

// Save stores the evaluation with a fresh id. The oldest record is dropped
// once the history bound is reached.
func (r *EvaluationRepositoryMemory) Save(
	params domain.LoanParameters,
	result domain.EligibilityResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, EvaluationRecord{
		ID:        uuid.NewString(),
		Params:    params,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	})
	if len(r.records) > maxStoredEvaluations {
		r.records = r.records[len(r.records)-maxStoredEvaluations:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *EvaluationRepositoryMemory) Recent(limit int) []EvaluationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	out := make([]EvaluationRecord, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out
}
