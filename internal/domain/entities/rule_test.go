package entities

import (
	"testing"
	"time"
)

func TestRule_ActiveOn(t *testing.T) {
	day := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %s", s)
		}
		return &d
	}
	today := time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		rule Rule
		want bool
	}{
		{name: "no window", rule: Rule{Active: true}, want: true},
		{name: "inactive flag", rule: Rule{Active: false}, want: false},
		{name: "starts today", rule: Rule{Active: true, ActiveFrom: day("2026-10-17")}, want: true},
		{name: "ends today", rule: Rule{Active: true, ActiveTo: day("2026-10-17")}, want: true},
		{name: "starts tomorrow", rule: Rule{Active: true, ActiveFrom: day("2026-10-18")}, want: false},
		{name: "ended yesterday", rule: Rule{Active: true, ActiveTo: day("2026-10-16")}, want: false},
		{name: "inside window", rule: Rule{Active: true, ActiveFrom: day("2026-01-01"), ActiveTo: day("2026-12-31")}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.ActiveOn(today); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAvailabilityStatusAndRole_Valid(t *testing.T) {
	if !AvailabilityToOrder.Valid() || AvailabilityStatus("maybe").Valid() {
		t.Fatalf("unexpected availability validation")
	}
	if !RoleWarehouse.Valid() || Role("guest").Valid() {
		t.Fatalf("unexpected role validation")
	}
}
