package service

import (
	"context"
	"sync"

	"github.com/hrithikcode/TO-DO-LIST/internal/identity"
	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
)

// fakeUserStore mimics the repository including its uniqueness constraints,
// so the flows see the same sentinel errors as against postgres.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]models.User)}
}

func (s *fakeUserStore) CreateLocal(_ context.Context, username, email string, passwordHash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, repository.ErrDuplicateUsername
		}
		if u.Email == email {
			return models.User{}, repository.ErrDuplicateEmail
		}
	}

	s.nextID++
	user := models.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		AuthProvider: models.AuthProviderLocal,
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) CreateGoogle(_ context.Context, username, email, googleID, picture string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, repository.ErrDuplicateUsername
		}
		if u.Email == email {
			return models.User{}, repository.ErrDuplicateEmail
		}
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return models.User{}, repository.ErrDuplicateGoogleID
		}
	}

	s.nextID++
	user := models.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		GoogleID:     &googleID,
		AuthProvider: models.AuthProviderGoogle,
	}
	if picture != "" {
		user.ProfilePicture = &picture
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) FindByUsernameOrEmail(_ context.Context, identifier string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) FindByGoogleID(_ context.Context, googleID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok || user.AuthProvider != models.AuthProviderLocal {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	s.users[id] = user
	return nil
}

type fakeTodoStore struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]models.Todo
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[int64]models.Todo)}
}

func (s *fakeTodoStore) Create(_ context.Context, userID int64, title, description string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	todo := models.Todo{ID: s.nextID, UserID: userID, Title: title, Description: description}
	s.todos[todo.ID] = todo
	return todo, nil
}

func (s *fakeTodoStore) GetByID(_ context.Context, userID, id int64) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return models.Todo{}, repository.ErrTodoNotFound
	}
	return todo, nil
}

func (s *fakeTodoStore) ListByUser(_ context.Context, userID int64) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Todo
	for _, t := range s.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTodoStore) ListActiveByUser(_ context.Context, userID int64) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Todo
	for _, t := range s.todos {
		if t.UserID == userID && !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTodoStore) Update(_ context.Context, todo models.Todo) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return models.Todo{}, repository.ErrTodoNotFound
	}
	s.todos[todo.ID] = todo
	return todo, nil
}

func (s *fakeTodoStore) Delete(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return repository.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

// fakeNotifier records every send and answers with a configurable outcome.
type fakeNotifier struct {
	mu        sync.Mutex
	delivered bool
	resets    []string
	digests   []string
	summaries []string
}

func newFakeNotifier(delivered bool) *fakeNotifier {
	return &fakeNotifier{delivered: delivered}
}

func (n *fakeNotifier) SendPasswordReset(_, _, token string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets = append(n.resets, token)
	return n.delivered
}

func (n *fakeNotifier) SendTodoCreated(to, _ string, _ models.Todo, _ []models.Todo) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.digests = append(n.digests, to)
	return n.delivered
}

func (n *fakeNotifier) SendSummary(to, _ string, _ []models.Todo) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summaries = append(n.summaries, to)
	return n.delivered
}

func (n *fakeNotifier) lastResetToken() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.resets) == 0 {
		return ""
	}
	return n.resets[len(n.resets)-1]
}

type fakeVerifier struct {
	profile identity.Profile
	err     error
}

func (v fakeVerifier) Verify(context.Context, string) (identity.Profile, error) {
	if v.err != nil {
		return identity.Profile{}, v.err
	}
	return v.profile, nil
}
