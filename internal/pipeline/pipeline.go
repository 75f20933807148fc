// Package pipeline assembles budget snapshots from settings, the current
// instant, and stored activities. Data flows one way: settings + now →
// day window → budget figures; settings + activities → the filtered,
// sorted list for the current window.
package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m4cbeth/16dollars/internal/clock"
	"github.com/m4cbeth/16dollars/internal/config"
	"github.com/m4cbeth/16dollars/internal/model"
)

// NewActivity builds an activity with its cost derived from the
// midnight-wrap corrected duration, rounded to two decimals.
func NewActivity(name string, category model.Category, start, end time.Time) model.Activity {
	return model.Activity{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		StartTime: start,
		EndTime:   end,
		Cost:      clock.Round2(clock.DurationHours(start, end)),
	}
}

// ForWindow returns the activities overlapping the day window, sorted
// chronologically by start time.
func ForWindow(activities []model.Activity, w clock.DayWindow) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if clock.OverlapsWindow(a.StartTime, a.EndTime, w.Start, w.End) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result
}

// AggregateCategories sums logged cost per category over the given
// activities, sorted by hours descending.
func AggregateCategories(activities []model.Activity) []model.CategoryStats {
	catMap := make(map[model.Category]*model.CategoryStats)

	for _, a := range activities {
		cs, ok := catMap[a.Category]
		if !ok {
			cs = &model.CategoryStats{Category: a.Category}
			catMap[a.Category] = cs
		}
		cs.Activities++
		cs.Hours += a.Cost
	}

	stats := make([]model.CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		cs.Hours = clock.Round2(cs.Hours)
		stats = append(stats, *cs)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Hours != stats[j].Hours {
			return stats[i].Hours > stats[j].Hours
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// BuildSnapshot derives the full budget view for one instant.
func BuildSnapshot(now time.Time, cfg config.Config, activities []model.Activity) model.BudgetSnapshot {
	sched := cfg.ClockSchedule()
	w := clock.Window(now, sched)
	todays := ForWindow(activities, w)

	return model.BudgetSnapshot{
		At:          now,
		Asleep:      clock.IsAsleep(now, sched),
		Allowance:   cfg.Budget.DailyAllowance,
		Remaining:   clock.Remaining(now, sched),
		Spent:       clock.Spent(now, sched),
		WindowStart: w.Start,
		WindowEnd:   w.End,
		Activities:  todays,
		Categories:  AggregateCategories(todays),
	}
}

// FromPreset resolves a preset's symbolic references against the current
// day window's start and returns the resulting activity. Both references
// resolve against the same anchor; an end preceding its start gains 24
// hours, identical to manually entered activities.
func FromPreset(p config.PresetConfig, cfg config.Config, now time.Time) (model.Activity, error) {
	startRef, err := clock.ParseRef(p.Start)
	if err != nil {
		return model.Activity{}, err
	}
	endRef, err := clock.ParseRef(p.End)
	if err != nil {
		return model.Activity{}, err
	}

	sched := cfg.ClockSchedule()
	anchor := clock.Window(now, sched).Start
	start, end := clock.ResolveSpan(startRef, endRef, sched, anchor)

	category := model.Category(p.Category)
	if !category.Valid() {
		category = model.CategoryNeutral
	}
	return NewActivity(p.Name, category, start, end), nil
}
