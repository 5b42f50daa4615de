// Package quotestatus holds the quote lifecycle rules: which transitions exist,
// which roles may perform them, and which states allow editing or calculation.
package quotestatus

import "github.com/alexVinter/fire-dynamics1/internal/domain/entities"

type transition struct {
	from entities.QuoteStatus
	to   entities.QuoteStatus
}

var transitions = map[transition][]entities.Role{
	{entities.QuoteStatusCalculated, entities.QuoteStatusApproved}:      {entities.RoleManager, entities.RoleAdmin},
	{entities.QuoteStatusApproved, entities.QuoteStatusWarehouseCheck}:  {entities.RoleManager, entities.RoleAdmin},
	{entities.QuoteStatusWarehouseCheck, entities.QuoteStatusConfirmed}: {entities.RoleWarehouse, entities.RoleAdmin},
	{entities.QuoteStatusWarehouseCheck, entities.QuoteStatusRework}:    {entities.RoleWarehouse, entities.RoleAdmin},
}

// Valid reports whether s is one of the known lifecycle states.
func Valid(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusDraft,
		entities.QuoteStatusCalculated,
		entities.QuoteStatusApproved,
		entities.QuoteStatusWarehouseCheck,
		entities.QuoteStatusRework,
		entities.QuoteStatusConfirmed:
		return true
	}
	return false
}

// CanTransition reports whether role may move a quote from -> to.
// Unknown states fail closed.
func CanTransition(role entities.Role, from, to entities.QuoteStatus) bool {
	if !Valid(from) || !Valid(to) {
		return false
	}
	allowed, ok := transitions[transition{from, to}]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Settle returns the resting state after an accepted transition into s.
// approved is transient and advances straight to warehouse_check.
func Settle(s entities.QuoteStatus) entities.QuoteStatus {
	if s == entities.QuoteStatusApproved {
		return entities.QuoteStatusWarehouseCheck
	}
	return s
}

// IsEditable reports whether items, zones and comment may change in s.
func IsEditable(s entities.QuoteStatus) bool {
	return s == entities.QuoteStatusDraft || s == entities.QuoteStatusRework
}

// IsCalculable reports whether a calculation may be triggered in s.
func IsCalculable(s entities.QuoteStatus) bool {
	return s == entities.QuoteStatusDraft || s == entities.QuoteStatusRework
}

// ResultFrozen reports whether result lines are locked against manual edits.
func ResultFrozen(s entities.QuoteStatus) bool {
	return s == entities.QuoteStatusConfirmed
}
