package service

import (
	"context"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

// UserStore is the persistence contract the auth flows need. Implemented by
// repository.UserRepository; kept as an interface so flows are testable
// without a live database.
type UserStore interface {
	CreateLocal(ctx context.Context, username, email string, passwordHash []byte) (models.User, error)
	CreateGoogle(ctx context.Context, username, email, googleID, picture string) (models.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error
}

type TodoStore interface {
	Create(ctx context.Context, userID int64, title, description string) (models.Todo, error)
	GetByID(ctx context.Context, userID, id int64) (models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	Update(ctx context.Context, todo models.Todo) (models.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Notifier delivers transactional email. It reports delivery as a bool
// because a failed send must never fail the operation that triggered it.
type Notifier interface {
	SendPasswordReset(to, username, resetToken string) bool
	SendTodoCreated(to, username string, created models.Todo, active []models.Todo) bool
	SendSummary(to, username string, active []models.Todo) bool
}
