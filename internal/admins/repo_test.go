package admins

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/internal/users"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DCF_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("DCF_TEST_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func TestCheckInvalidUserIDIsDenied(t *testing.T) {
	repo := NewRepository(nil)

	decision, err := repo.Check(context.Background(), "not-a-uuid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision != DecisionDenied {
		t.Fatalf("expected denied, got %s", decision)
	}
}

func TestCheckGrantLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewRepository(db)
	userRepo := users.NewRepository(db)

	user, err := userRepo.Create(ctx, users.CreateUserDTO{
		Email:        "admin-check@example.com",
		PasswordHash: "x",
		FullName:     "Admin Check",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM admin_users WHERE user_id = ?", user.ID)
		db.Exec("DELETE FROM users WHERE id = ?", user.ID)
	})

	decision, err := repo.Check(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("check before grant: %v", err)
	}
	if decision != DecisionDenied {
		t.Fatalf("expected denied before grant, got %s", decision)
	}

	if err := repo.Grant(ctx, user.ID); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := repo.Grant(ctx, user.ID); err != nil {
		t.Fatalf("grant twice should be idempotent: %v", err)
	}

	decision, err = repo.Check(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("check after grant: %v", err)
	}
	if decision != DecisionAuthorized {
		t.Fatalf("expected authorized after grant, got %s", decision)
	}

	if err := repo.Revoke(ctx, user.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	decision, err = repo.Check(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("check after revoke: %v", err)
	}
	if decision != DecisionDenied {
		t.Fatalf("expected denied after revoke, got %s", decision)
	}
}
