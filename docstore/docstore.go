/*
Package docstore persists the application's single document.

PURPOSE:
  The whole data set lives in one document per owner identity: the student
  collection plus the append-only payment log. Stores are opaque key-value
  collaborators with last-writer-wins semantics and no conflict detection;
  loading an absent document yields empty collections.

IMPLEMENTATIONS:
  - docstore/memory: map-backed, for tests and development
  - docstore/sqlite: one JSON payload row per owner (WAL mode)
  - docstore/redis:  one JSON value per owner

DEBOUNCED WRITES:
  The surrounding application batches saves through DebouncedWriter, which
  coalesces every Queue within a time window into a single Save. Flush
  forces the pending write out (used at shutdown).

SEE ALSO:
  - api/handlers.go: the only writer of the document
*/
package docstore

import (
	"context"

	"github.com/matricula/tuition-engine/tuition"
)

// Document is the unit of persistence: everything the application owns.
type Document struct {
	Students []tuition.Student `json:"students"`
	Payments []tuition.Payment `json:"payments"`
}

// Clone returns a deep copy, including each student's checklist slice, so a
// queued snapshot cannot be mutated out from under an in-flight save.
func (d Document) Clone() Document {
	out := Document{
		Students: make([]tuition.Student, len(d.Students)),
		Payments: make([]tuition.Payment, len(d.Payments)),
	}
	copy(out.Payments, d.Payments)
	for i, s := range d.Students {
		s.PlanStatus = s.PlanStatus.Clone()
		out.Students[i] = s
	}
	return out
}

// Store loads and saves the owner's document. Implementations are
// last-writer-wins; Load on an absent document returns empty collections
// rather than an error.
type Store interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}
