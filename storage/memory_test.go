package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/models"
)

func TestMemoryTodoStoreInsertAssignsIdsAndTimestamps(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTodoStore()

	first := models.Todo{Task: "Buy milk", Details: "2%"}
	require.NoError(t, s.Insert(ctx, &first))
	second := models.Todo{Task: "Walk dog", Details: "around the block"}
	require.NoError(t, s.Insert(ctx, &second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.Created.IsZero())
	assert.Equal(t, first.Created, first.Updated)
}

func TestMemoryTodoStoreGetMissIsNilNil(t *testing.T) {
	s := NewMemoryTodoStore()
	got, err := s.Get(context.Background(), 99999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryTodoStoreUpdateRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTodoStore()

	todo := models.Todo{Task: "Buy milk", Details: "2%"}
	require.NoError(t, s.Insert(ctx, &todo))
	created := todo.Created

	time.Sleep(5 * time.Millisecond)
	todo.Completed = true
	require.NoError(t, s.Update(ctx, &todo))

	got, err := s.Get(ctx, todo.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)
	assert.Equal(t, created, got.Created)
	assert.True(t, got.Updated.After(created))
}

func TestMemoryTodoStoreListOrderedById(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTodoStore()

	for _, task := range []string{"a", "b", "c"} {
		todo := models.Todo{Task: task, Details: "d"}
		require.NoError(t, s.Insert(ctx, &todo))
	}

	todos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, int64(1), todos[0].ID)
	assert.Equal(t, int64(2), todos[1].ID)
	assert.Equal(t, int64(3), todos[2].ID)
}

func TestMemoryTodoStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTodoStore()

	todo := models.Todo{Task: "Buy milk", Details: "2%"}
	require.NoError(t, s.Insert(ctx, &todo))

	deleted, err := s.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := s.Get(ctx, todo.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = s.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryTodoStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTodoStore()

	todo := models.Todo{Task: "Buy milk", Details: "2%"}
	require.NoError(t, s.Insert(ctx, &todo))

	got, err := s.Get(ctx, todo.ID)
	require.NoError(t, err)
	got.Task = "mutated"

	again, err := s.Get(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", again.Task)
}

func TestMemoryContactStoreUniqueProbes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryContactStore()

	contact := models.Contact{Name: "Ada", PhoneNumber: "555-0100", Email: "ada@example.com"}
	require.NoError(t, s.Insert(ctx, &contact))
	assert.Equal(t, int64(1), contact.ID)

	used, err := s.PhoneInUse(ctx, "555-0100")
	require.NoError(t, err)
	assert.True(t, used)

	used, err = s.PhoneInUse(ctx, "555-0199")
	require.NoError(t, err)
	assert.False(t, used)

	used, err = s.EmailInUse(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, used)

	used, err = s.EmailInUse(ctx, "grace@example.com")
	require.NoError(t, err)
	assert.False(t, used)
}
