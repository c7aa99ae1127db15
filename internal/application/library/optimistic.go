// Package library is the application layer for the saved-recipe store:
// in-memory source of truth, optimistic mutation ledger, debounced durable
// writes.
package library

import (
	"github.com/mixmas/v2/internal/domain/recipe"
)

// ledger is a two-stage optimistic state machine. Mutations apply to a
// working copy immediately; once the durable write settles they are either
// committed (working copy becomes authoritative) or rolled back (working
// copy resynchronizes to the last committed list). Callers always read the
// working copy, so the UI sees mutations before persistence confirms them.
type ledger struct {
	committed []recipe.MixRecipe
	working   []recipe.MixRecipe
	pending   int
}

func newLedger(initial []recipe.MixRecipe) *ledger {
	l := &ledger{}
	l.committed = cloneAll(initial)
	l.working = cloneAll(initial)
	return l
}

// view returns the working copy. The slice is shared; callers must not
// mutate it outside apply.
func (l *ledger) view() []recipe.MixRecipe {
	return l.working
}

// apply runs one mutation against the working copy and counts it pending.
func (l *ledger) apply(mutate func([]recipe.MixRecipe) []recipe.MixRecipe) {
	l.working = mutate(l.working)
	l.pending++
}

// snapshot returns a deep copy of the working list together with the number
// of pending mutations it carries, for a later matching commit.
func (l *ledger) snapshot() ([]recipe.MixRecipe, int) {
	return cloneAll(l.working), l.pending
}

// commit marks a previously snapshotted state durable. Only the mutations
// the snapshot carried are retired; anything applied since stays pending so
// the next persist still writes it.
func (l *ledger) commit(durable []recipe.MixRecipe, applied int) {
	l.committed = cloneAll(durable)
	l.pending -= applied
	if l.pending < 0 {
		l.pending = 0
	}
}

// rollback discards pending mutations, resynchronizing the working copy to
// the authoritative committed list.
func (l *ledger) rollback() {
	l.working = cloneAll(l.committed)
	l.pending = 0
}

func (l *ledger) dirty() bool {
	return l.pending > 0
}

func cloneAll(in []recipe.MixRecipe) []recipe.MixRecipe {
	out := make([]recipe.MixRecipe, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
