package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/m4cbeth/16dollars/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "activities.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoadActivity(t *testing.T) {
	s := openTestStore(t)

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	a := model.Activity{
		ID:        "a1",
		Name:      "Deep work",
		Category:  model.CategoryBeneficial,
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
		Cost:      1.5,
	}
	if err := s.SaveActivity(a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadActivities()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d activities, want 1", len(got))
	}
	if got[0].ID != "a1" || got[0].Name != "Deep work" || got[0].Category != model.CategoryBeneficial {
		t.Errorf("loaded activity mismatch: %+v", got[0])
	}
	if !got[0].StartTime.Equal(a.StartTime) || !got[0].EndTime.Equal(a.EndTime) {
		t.Errorf("times not round-tripped: %+v", got[0])
	}
	if got[0].Cost != 1.5 {
		t.Errorf("cost = %v, want 1.5", got[0].Cost)
	}
}

func TestLoadOrdersByStart(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	for i, id := range []string{"later", "earlier"} {
		a := model.Activity{
			ID:        id,
			Name:      id,
			Category:  model.CategoryNeutral,
			StartTime: base.Add(time.Duration(1-i) * time.Hour),
			EndTime:   base.Add(time.Duration(2-i) * time.Hour),
			Cost:      1,
		}
		if err := s.SaveActivity(a); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := s.LoadActivities()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "earlier" || got[1].ID != "later" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestDeleteAndCount(t *testing.T) {
	s := openTestStore(t)

	a := model.Activity{
		ID:        "gone",
		Name:      "Scrolling",
		Category:  model.CategoryDetrimental,
		StartTime: time.Date(2024, 1, 2, 21, 0, 0, 0, time.Local),
		EndTime:   time.Date(2024, 1, 2, 22, 0, 0, 0, time.Local),
		Cost:      1,
	}
	if err := s.SaveActivity(a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n, _ := s.ActivityCount(); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if err := s.DeleteActivity("gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := s.ActivityCount(); n != 0 {
		t.Fatalf("count after delete = %d, want 0", n)
	}
}
