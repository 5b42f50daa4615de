// Package calc expands quote items into a bill of materials.
//
// The pipeline is: Dedup collapses identical items, each active rule of the
// item's technique is matched through its Condition, and the Actions of every
// matching rule are summed per SKU. Conditions and actions form a closed
// vocabulary decoded from JSON; stored rule text is never evaluated.
//
// Malformed fragments never abort a calculation: an action that does not decode
// is skipped, and a rule whose condition does not decode does not match. The
// condition is all-or-nothing: one unknown or ill-typed key disables the whole
// rule rather than just that key, since dropping a key would widen the match.
// Rules written through the rule use case are validated, so this only affects
// documents stored by other means.
//
// Quantities are int64. A contribution that would overflow is dropped and
// recorded in the trace.
package calc
