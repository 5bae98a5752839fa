package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
)

var todoOwner = models.User{ID: 1, Username: "alice", Email: "a@x.com", AuthProvider: models.AuthProviderLocal}

func TestCreateTodoSendsDigest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc := NewTodoService(newFakeTodoStore(), notifier, zerolog.Nop())

	todo, emailSent, err := svc.Create(ctx, todoOwner, "buy milk", "two liters")
	require.NoError(t, err)
	require.True(t, emailSent)
	require.Equal(t, "buy milk", todo.Title)
	require.Equal(t, []string{"a@x.com"}, notifier.digests)
}

// Delivery failure is reported as a flag, never as a failed creation.
func TestCreateTodoDeliveryFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTodoService(newFakeTodoStore(), newFakeNotifier(false), zerolog.Nop())

	todo, emailSent, err := svc.Create(ctx, todoOwner, "buy milk", "")
	require.NoError(t, err)
	require.False(t, emailSent)
	require.NotZero(t, todo.ID)
}

func TestCreateTodoTitleRequired(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoStore(), newFakeNotifier(true), zerolog.Nop())

	_, _, err := svc.Create(context.Background(), todoOwner, "", "desc")
	require.ErrorIs(t, err, ErrTitleRequired)
}

func TestUpdateTodoPartialPatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeTodoStore()
	svc := NewTodoService(store, newFakeNotifier(true), zerolog.Nop())

	todo, _, err := svc.Create(ctx, todoOwner, "buy milk", "two liters")
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, todoOwner.ID, todo.ID, TodoPatch{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "buy milk", updated.Title)
	require.Equal(t, "two liters", updated.Description)
}

func TestUpdateTodoWrongOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTodoService(newFakeTodoStore(), newFakeNotifier(true), zerolog.Nop())

	todo, _, err := svc.Create(ctx, todoOwner, "buy milk", "")
	require.NoError(t, err)

	title := "stolen"
	_, err = svc.Update(ctx, todoOwner.ID+1, todo.ID, TodoPatch{Title: &title})
	require.ErrorIs(t, err, repository.ErrTodoNotFound)
}

func TestEmailSummaryCountsActiveOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newFakeTodoStore()
	notifier := newFakeNotifier(true)
	svc := NewTodoService(store, notifier, zerolog.Nop())

	first, _, err := svc.Create(ctx, todoOwner, "buy milk", "")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, todoOwner, "walk dog", "")
	require.NoError(t, err)

	completed := true
	_, err = svc.Update(ctx, todoOwner.ID, first.ID, TodoPatch{Completed: &completed})
	require.NoError(t, err)

	count, sent, err := svc.EmailSummary(ctx, todoOwner)
	require.NoError(t, err)
	require.True(t, sent)
	require.Equal(t, 1, count)
	require.Equal(t, []string{"a@x.com"}, notifier.summaries)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTodoService(newFakeTodoStore(), newFakeNotifier(true), zerolog.Nop())

	todo, _, err := svc.Create(ctx, todoOwner, "buy milk", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, todoOwner.ID, todo.ID))
	require.ErrorIs(t, svc.Delete(ctx, todoOwner.ID, todo.ID), repository.ErrTodoNotFound)
}
