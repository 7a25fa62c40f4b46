package docstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matricula/tuition-engine/docstore"
	"github.com/matricula/tuition-engine/docstore/memory"
	"github.com/matricula/tuition-engine/tuition"
)

func docWithStudent(id string) docstore.Document {
	return docstore.Document{
		Students: []tuition.Student{{ID: id, Status: tuition.StudentActive}},
	}
}

func TestDebouncedWriter_CoalescesBurst(t *testing.T) {
	// GIVEN: three rapid Queue calls within one window
	// WHEN: the window elapses
	// THEN: exactly one Save, carrying the last snapshot

	store := memory.New()
	writer := docstore.NewDebouncedWriter(store, 30*time.Millisecond, nil)

	writer.Queue(docWithStudent("a"))
	writer.Queue(docWithStudent("b"))
	writer.Queue(docWithStudent("c"))

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 1, store.SaveCount)
	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Students, 1)
	assert.Equal(t, "c", doc.Students[0].ID)
}

func TestDebouncedWriter_FlushWritesImmediately(t *testing.T) {
	store := memory.New()
	writer := docstore.NewDebouncedWriter(store, time.Hour, nil)

	writer.Queue(docWithStudent("a"))
	require.NoError(t, writer.Flush(context.Background()))

	assert.Equal(t, 1, store.SaveCount)

	// Nothing pending: Flush is a no-op
	require.NoError(t, writer.Flush(context.Background()))
	assert.Equal(t, 1, store.SaveCount)
}

func TestDebouncedWriter_CloseFlushesAndRejectsFurtherWrites(t *testing.T) {
	store := memory.New()
	writer := docstore.NewDebouncedWriter(store, time.Hour, nil)

	writer.Queue(docWithStudent("a"))
	require.NoError(t, writer.Close(context.Background()))
	assert.Equal(t, 1, store.SaveCount)

	writer.Queue(docWithStudent("b"))
	require.NoError(t, writer.Flush(context.Background()))
	assert.Equal(t, 1, store.SaveCount, "writes after Close are dropped")
}

func TestDocument_Clone_DeepCopiesChecklists(t *testing.T) {
	cfg := tuition.DefaultCatalog().MustGet(tuition.PlanPodiatry)
	doc := docstore.Document{
		Students: []tuition.Student{{
			ID:         "st-1",
			PlanStatus: tuition.NewPaymentPlanStatus(cfg),
		}},
	}

	clone := doc.Clone()
	clone.Students[0].PlanStatus.Schedule[0] = true

	assert.False(t, doc.Students[0].PlanStatus.Schedule[0],
		"mutating the clone must not leak into the original")
}

func TestDebouncedWriter_QueueSnapshotsAtCallTime(t *testing.T) {
	// GIVEN: a document queued and then mutated by the caller
	// THEN: the saved snapshot reflects the state at Queue time

	store := memory.New()
	writer := docstore.NewDebouncedWriter(store, 20*time.Millisecond, nil)

	doc := docWithStudent("a")
	writer.Queue(doc)
	doc.Students[0].ID = "mutated"

	time.Sleep(80 * time.Millisecond)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", saved.Students[0].ID)
}
