package port

import "github.com/lully/dayplan/internal/domain"

// PlanCache memoizes generated plans keyed by their normalized inputs and
// calendar day. Regeneration is idempotent and cheap, so writers need no
// coordination beyond the cache's own locking.
type PlanCache interface {
	// Get returns the cached plan for key, if any.
	Get(key string) (domain.Plan, bool)

	// Put stores the plan under key, replacing any previous entry.
	Put(key string, plan domain.Plan)
}
