package model

import "time"

// BudgetSnapshot is the derived view of the day's budget at one instant.
// It is recomputed on every query and never persisted.
type BudgetSnapshot struct {
	At          time.Time
	Asleep      bool
	Allowance   float64
	Remaining   float64
	Spent       float64
	WindowStart time.Time
	WindowEnd   time.Time
	Activities  []Activity
	Categories  []CategoryStats
}

// Logged returns the total hours logged across all categories.
func (s BudgetSnapshot) Logged() float64 {
	var total float64
	for _, c := range s.Categories {
		total += c.Hours
	}
	return total
}
