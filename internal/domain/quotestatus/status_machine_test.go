package quotestatus

import (
	"testing"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

var (
	allStatuses = []entities.QuoteStatus{
		entities.QuoteStatusDraft,
		entities.QuoteStatusCalculated,
		entities.QuoteStatusApproved,
		entities.QuoteStatusWarehouseCheck,
		entities.QuoteStatusRework,
		entities.QuoteStatusConfirmed,
	}
	allRoles = []entities.Role{entities.RoleAdmin, entities.RoleManager, entities.RoleWarehouse, entities.Role("guest")}
)

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from  entities.QuoteStatus
		to    entities.QuoteStatus
		roles []entities.Role
	}{
		{entities.QuoteStatusCalculated, entities.QuoteStatusApproved, []entities.Role{entities.RoleManager, entities.RoleAdmin}},
		{entities.QuoteStatusApproved, entities.QuoteStatusWarehouseCheck, []entities.Role{entities.RoleManager, entities.RoleAdmin}},
		{entities.QuoteStatusWarehouseCheck, entities.QuoteStatusConfirmed, []entities.Role{entities.RoleWarehouse, entities.RoleAdmin}},
		{entities.QuoteStatusWarehouseCheck, entities.QuoteStatusRework, []entities.Role{entities.RoleWarehouse, entities.RoleAdmin}},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			for _, role := range allRoles {
				want := false
				for _, r := range tc.roles {
					if r == role {
						want = true
					}
				}
				if got := CanTransition(role, tc.from, tc.to); got != want {
					t.Fatalf("role %s: expected %v, got %v", role, want, got)
				}
			}
		})
	}
}

func TestCanTransition_RejectsUnlistedPairs(t *testing.T) {
	listed := map[transition]bool{}
	for k := range transitions {
		listed[k] = true
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if listed[transition{from, to}] {
				continue
			}
			for _, role := range allRoles {
				if CanTransition(role, from, to) {
					t.Fatalf("%s -> %s must be rejected for %s", from, to, role)
				}
			}
		}
	}
}

func TestCanTransition_UnknownStatesFailClosed(t *testing.T) {
	if CanTransition(entities.RoleAdmin, "archived", entities.QuoteStatusApproved) {
		t.Fatalf("unknown from state must be rejected")
	}
	if CanTransition(entities.RoleAdmin, entities.QuoteStatusCalculated, "APPROVED") {
		t.Fatalf("unknown to state must be rejected")
	}
}

func TestSettle(t *testing.T) {
	if got := Settle(entities.QuoteStatusApproved); got != entities.QuoteStatusWarehouseCheck {
		t.Fatalf("expected warehouse_check, got %s", got)
	}
	for _, s := range []entities.QuoteStatus{entities.QuoteStatusConfirmed, entities.QuoteStatusRework, entities.QuoteStatusWarehouseCheck} {
		if got := Settle(s); got != s {
			t.Fatalf("expected %s unchanged, got %s", s, got)
		}
	}
}

func TestEditableCalculableFrozen(t *testing.T) {
	for _, s := range allStatuses {
		wantOpen := s == entities.QuoteStatusDraft || s == entities.QuoteStatusRework
		if IsEditable(s) != wantOpen || IsCalculable(s) != wantOpen {
			t.Fatalf("unexpected editable/calculable for %s", s)
		}
		if ResultFrozen(s) != (s == entities.QuoteStatusConfirmed) {
			t.Fatalf("unexpected frozen for %s", s)
		}
	}
}
