// Package model defines domain types for activities and budget figures.
package model

import "time"

// Category classifies an activity for aggregation and display. It is
// opaque to the time engine itself.
type Category string

// The built-in categories.
const (
	CategoryBeneficial  Category = "beneficial"
	CategoryDetrimental Category = "detrimental"
	CategorySelfCare    Category = "self_care"
	CategoryNeutral     Category = "neutral"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryBeneficial,
	CategoryDetrimental,
	CategorySelfCare,
	CategoryNeutral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Activity is one logged block of time. Cost is the midnight-wrap
// corrected duration of [StartTime, EndTime) in hours, rounded to two
// decimals at creation; the engine only reads activities, never mutates
// them.
type Activity struct {
	ID        string
	Name      string
	Category  Category
	StartTime time.Time
	EndTime   time.Time
	Cost      float64
}

// CategoryStats aggregates logged hours for one category within a day
// window.
type CategoryStats struct {
	Category   Category
	Activities int
	Hours      float64
}
