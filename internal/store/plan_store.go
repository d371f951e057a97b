package store

import (
	"errors"
	"sync"

	"cryptowallet/internal/models"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanStore holds the earning plans. Only the active flag mutates.
type PlanStore struct {
	mu    sync.RWMutex
	order []string
	plans map[string]models.EarningPlan
}

func NewPlanStore(seed []models.EarningPlan) *PlanStore {
	order := make([]string, 0, len(seed))
	plans := make(map[string]models.EarningPlan, len(seed))
	for _, plan := range seed {
		order = append(order, plan.ID)
		plans[plan.ID] = plan
	}
	return &PlanStore{order: order, plans: plans}
}

func (s *PlanStore) List() []models.EarningPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EarningPlan, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.plans[id])
	}
	return out
}

// Toggle flips the active flag and returns the updated plan.
func (s *PlanStore) Toggle(id string) (models.EarningPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, ok := s.plans[id]
	if !ok {
		return models.EarningPlan{}, ErrPlanNotFound
	}
	plan.Active = !plan.Active
	s.plans[id] = plan
	return plan, nil
}

// HasActive reports whether any plan is currently active. This is the sole
// input to the accrual simulator's condition.
func (s *PlanStore) HasActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, plan := range s.plans {
		if plan.Active {
			return true
		}
	}
	return false
}
