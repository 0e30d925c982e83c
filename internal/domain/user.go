package domain

import "context"

// User represents one profile record in the directory.
// Age is nil when the person chose not to provide it.
type User struct {
	ID       int64
	Username string
	FullName string
	Email    string
	Age      *int
	Bio      string
}

// UserRepository defines persistence operations for users.
// Username and email uniqueness is enforced by the storage engine;
// implementations translate constraint violations to ErrConflict.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) (bool, error)
}
