package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kmdeck/userdir/internal/domain"
	"github.com/kmdeck/userdir/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func intPtr(v int) *int { return &v }

func TestUserRepository_Insert(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username: "tester",
		FullName: "Test User",
		Email:    "test@example.com",
		Age:      intPtr(30),
		Bio:      "hello",
	}

	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set after insert")
	}
}

func TestUserRepository_Insert_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username: "roundtrip",
		FullName: "Round Trip",
		Email:    "round@example.com",
		Age:      intPtr(42),
		Bio:      "a short bio",
	}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Username != user.Username {
		t.Fatalf("expected username %q, got %q", user.Username, found.Username)
	}
	if found.FullName != user.FullName {
		t.Fatalf("expected full name %q, got %q", user.FullName, found.FullName)
	}
	if found.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, found.Email)
	}
	if found.Age == nil || *found.Age != 42 {
		t.Fatalf("expected age 42, got %v", found.Age)
	}
	if found.Bio != user.Bio {
		t.Fatalf("expected bio %q, got %q", user.Bio, found.Bio)
	}
}

func TestUserRepository_Insert_NilAgeStoredAsNull(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username: "noage",
		FullName: "No Age",
		Email:    "noage@example.com",
	}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Age != nil {
		t.Fatalf("expected nil age, got %d", *found.Age)
	}
	if found.Bio != "" {
		t.Fatalf("expected empty bio, got %q", found.Bio)
	}
}

func TestUserRepository_Insert_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Username: "dup", FullName: "User One", Email: "one@example.com"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert first: %v", err)
	}

	// Same username, different email: still a conflict.
	second := &domain.User{Username: "dup", FullName: "User Two", Email: "two@example.com"}
	if err := repo.Insert(ctx, second); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Exactly one row exists afterward.
	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after conflict, got %d", len(users))
	}
}

func TestUserRepository_Insert_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Username: "emailone", FullName: "User One", Email: "same@example.com"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert first: %v", err)
	}

	second := &domain.User{Username: "emailtwo", FullName: "User Two", Email: "same@example.com"}
	if err := repo.Insert(ctx, second); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		u := &domain.User{Username: name, FullName: "User " + name, Email: name + "@example.com"}
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert %s: %v", name, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Username != "third" || users[2].Username != "first" {
		t.Fatalf("expected newest first, got order %s, %s, %s",
			users[0].Username, users[1].Username, users[2].Username)
	}
}

func TestUserRepository_List_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d users", len(users))
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username: "original",
		FullName: "Original Name",
		Email:    "orig@example.com",
		Age:      intPtr(25),
		Bio:      "bio text",
	}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Change only the age; everything else must survive the overwrite.
	user.Age = intPtr(26)
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Age == nil || *found.Age != 26 {
		t.Fatalf("expected age 26, got %v", found.Age)
	}
	if found.Username != "original" || found.FullName != "Original Name" ||
		found.Email != "orig@example.com" || found.Bio != "bio text" {
		t.Fatalf("expected other fields unchanged, got %+v", found)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	user := &domain.User{ID: 12345, Username: "ghost", FullName: "Ghost", Email: "ghost@example.com"}
	if err := repo.Update(context.Background(), user); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update_ConflictWithOtherRow(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	alice := &domain.User{Username: "alice", FullName: "Alice A", Email: "alice@example.com"}
	bob := &domain.User{Username: "bob", FullName: "Bob B", Email: "bob@example.com"}
	for _, u := range []*domain.User{alice, bob} {
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert %s: %v", u.Username, err)
		}
	}

	// Renaming bob to alice's username collides with a different row.
	bob.Username = "alice"
	if err := repo.Update(ctx, bob); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_Update_KeepingOwnUniqueFields(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "keeper", FullName: "Keeper", Email: "keep@example.com"}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Re-saving with the same username/email must not count as a conflict.
	user.FullName = "Keeper Renamed"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update with own unique fields: %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "todelete", FullName: "To Delete", Email: "del@example.com"}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	deleted, err := repo.Delete(ctx, user.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report a removed row")
	}

	if _, err := repo.GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserRepository_Delete_MissingRowIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	deleted, err := repo.Delete(context.Background(), 99999)
	if err != nil {
		t.Fatalf("Delete of missing row errored: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of missing row to report false")
	}
}
