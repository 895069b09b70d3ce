package memstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkaratas/taskpad/internal/model"
	"github.com/nkaratas/taskpad/internal/store/memstore"
)

// fixedClock always returns the same instant, forcing the ID allocator
// to disambiguate on its own.
func fixedClock() func() time.Time {
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestAdd_BlankTitleIsNoop(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	for _, title := range []string{"", "   ", "\t\n"} {
		_, ok := st.Add(title)
		assert.False(t, ok, "title %q should be rejected", title)
	}
	assert.Equal(t, 0, st.Len())
}

func TestAdd_PopulatesDefaults(t *testing.T) {
	t.Parallel()

	st := memstore.NewWithClock(fixedClock())
	task, ok := st.Add("  Buy milk  ")
	require.True(t, ok)

	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, model.PriorityLow, task.Priority)
	assert.Empty(t, task.Description)
	assert.Empty(t, task.Tags)
	assert.Equal(t, fixedClock()().UnixMilli(), task.CreatedAt)

	require.Equal(t, 1, st.Len())
	assert.Equal(t, task, st.Tasks()[0])
}

func TestAdd_IDsUniqueAndIncreasing(t *testing.T) {
	t.Parallel()

	// Same wall-clock millisecond for every add.
	st := memstore.NewWithClock(fixedClock())
	var last int64
	for i := 0; i < 100; i++ {
		task, ok := st.Add("task")
		require.True(t, ok)
		assert.Greater(t, task.ID, last)
		last = task.ID
	}
}

func TestToggleComplete_TwiceRestores(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")

	require.True(t, st.ToggleComplete(task.ID))
	got, _ := st.Get(task.ID)
	assert.True(t, got.Completed)

	require.True(t, st.ToggleComplete(task.ID))
	got, _ = st.Get(task.ID)
	assert.Equal(t, task, got, "only completed should have changed, and it is back")
}

func TestToggleComplete_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	st.Add("Buy milk")
	assert.False(t, st.ToggleComplete(42))
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	a, _ := st.Add("one")
	b, _ := st.Add("two")
	c, _ := st.Add("three")

	require.True(t, st.Delete(b.ID))
	require.Equal(t, 2, st.Len())
	assert.Equal(t, a.ID, st.Tasks()[0].ID)
	assert.Equal(t, c.ID, st.Tasks()[1].ID)

	assert.False(t, st.Delete(b.ID), "second delete of same id is a no-op")
	assert.Equal(t, 2, st.Len())
}

func TestDelete_TaskUnderEditDropsSession(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("one")
	require.True(t, st.StartEdit(task.ID))
	require.True(t, st.Delete(task.ID))
	assert.Nil(t, st.Session())
	assert.Zero(t, st.EditingID())
}

func TestStartEdit_SeedsSessionFromTask(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")
	st.StartEdit(task.ID)
	sess := st.Session()
	require.NotNil(t, sess)
	sess.Description = "2 liters"
	sess.TagsInput = "errand, food"
	sess.Priority = model.PriorityHigh
	require.True(t, st.CommitEdit())

	st.StartEdit(task.ID)
	sess = st.Session()
	require.NotNil(t, sess)
	assert.Equal(t, task.ID, sess.TaskID)
	assert.Equal(t, "Buy milk", sess.Title)
	assert.Equal(t, "2 liters", sess.Description)
	assert.Equal(t, "errand, food", sess.TagsInput)
	assert.Equal(t, model.PriorityHigh, sess.Priority)
}

func TestStartEdit_SecondEditReplacesFirst(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	a, _ := st.Add("A")
	b, _ := st.Add("B")

	require.True(t, st.StartEdit(b.ID))
	st.Session().Title = "B changed"

	require.True(t, st.StartEdit(a.ID))
	assert.Equal(t, a.ID, st.EditingID(), "editing moved to A, clearing B")

	// B's in-flight change is gone; committing A leaves B untouched.
	require.True(t, st.CommitEdit())
	got, _ := st.Get(b.ID)
	assert.Equal(t, "B", got.Title)
}

func TestStartEdit_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	assert.False(t, st.StartEdit(7))
	assert.Nil(t, st.Session())
}

func TestCommitEdit_ParsesTags(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")
	st.StartEdit(task.ID)
	st.Session().TagsInput = "a, b ,  , a"
	require.True(t, st.CommitEdit())

	got, _ := st.Get(task.ID)
	assert.Equal(t, []string{"a", "b", "a"}, got.Tags,
		"empties dropped, order and duplicates preserved")
}

func TestCommitEdit_AppliesAllFields(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")
	st.StartEdit(task.ID)
	sess := st.Session()
	sess.Title = "  Buy oat milk  "
	sess.Description = " the barista kind "
	sess.TagsInput = "errand"
	sess.Priority = model.PriorityMedium
	require.True(t, st.CommitEdit())

	got, _ := st.Get(task.ID)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Equal(t, "the barista kind", got.Description)
	assert.Equal(t, []string{"errand"}, got.Tags)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Equal(t, task.CreatedAt, got.CreatedAt, "createdAt is immutable")
	assert.Equal(t, task.ID, got.ID)
	assert.Nil(t, st.Session())
}

func TestCommitEdit_EmptyTitleDiscardsEverything(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")
	st.StartEdit(task.ID)
	sess := st.Session()
	sess.Title = "   "
	sess.Description = "should not land"
	sess.TagsInput = "nor, this"
	sess.Priority = model.PriorityHigh

	assert.False(t, st.CommitEdit())
	assert.Nil(t, st.Session(), "edit mode exited")

	got, _ := st.Get(task.ID)
	assert.Equal(t, task, got, "no partial commit")
}

func TestCommitEdit_WithoutSessionIsNoop(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	st.Add("Buy milk")
	assert.False(t, st.CommitEdit())
}

func TestCancelEdit_LeavesTaskUnchanged(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	task, _ := st.Add("Buy milk")
	st.StartEdit(task.ID)
	st.Session().Title = "changed"
	st.CancelEdit()

	assert.Nil(t, st.Session())
	got, _ := st.Get(task.ID)
	assert.Equal(t, task, got)
}

func TestStats(t *testing.T) {
	t.Parallel()

	st := memstore.New()
	a, _ := st.Add("one")
	st.Add("two")
	st.Add("three")
	st.ToggleComplete(a.ID)

	done, pending := st.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
