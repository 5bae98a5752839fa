package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

var ErrTitleRequired = errors.New("title is required")

type TodoService struct {
	todos    TodoStore
	notifier Notifier
	log      zerolog.Logger
}

func NewTodoService(todos TodoStore, notifier Notifier, log zerolog.Logger) *TodoService {
	return &TodoService{
		todos:    todos,
		notifier: notifier,
		log:      log,
	}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

// Create inserts the todo and fires the creation digest. The digest failing
// to deliver does not fail the creation; the outcome comes back as a flag.
func (s *TodoService) Create(ctx context.Context, user models.User, title, description string) (models.Todo, bool, error) {
	if title == "" {
		return models.Todo{}, false, ErrTitleRequired
	}

	todo, err := s.todos.Create(ctx, user.ID, title, description)
	if err != nil {
		return models.Todo{}, false, err
	}

	active, err := s.todos.ListActiveByUser(ctx, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("list active todos for digest failed")
		active = []models.Todo{todo}
	}

	emailSent := s.notifier.SendTodoCreated(user.Email, user.Username, todo, active)
	return todo, emailSent, nil
}

type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

func (s *TodoService) Update(ctx context.Context, userID, id int64, patch TodoPatch) (models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return models.Todo{}, err
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	return s.todos.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return s.todos.Delete(ctx, userID, id)
}

// EmailSummary sends the on-demand active-task summary and reports the count
// and the delivery outcome.
func (s *TodoService) EmailSummary(ctx context.Context, user models.User) (int, bool, error) {
	active, err := s.todos.ListActiveByUser(ctx, user.ID)
	if err != nil {
		return 0, false, err
	}

	sent := s.notifier.SendSummary(user.Email, user.Username, active)
	return len(active), sent, nil
}
