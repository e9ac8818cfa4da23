package users

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	_ "modernc.org/sqlite"

	"github.com/oakinyemi/masjid-receipts/internal/auth"
	"github.com/oakinyemi/masjid-receipts/internal/entity"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	if err := repository.RunMigrations(conn, repository.DialectSQLite, nil); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewService(repository.NewUserRepository(conn, nil), tokens, nil)
}

func TestRegisterNormalizesRole(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "amina",
		Email:    "amina@masjid.test",
		Password: "s3cret",
		FullName: "Amina Sule",
		Role:     "Finance Secretary",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != entity.RoleFinanceSecretary {
		t.Fatalf("got role %q, want finance_secretary", user.Role)
	}
	if !user.IsActive {
		t.Fatal("new accounts should be active")
	}
	if user.HashedPassword == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "x", Email: "x@masjid.test", Password: "p", Role: "treasurer",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("got %v, want InvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "finance_secretary") {
		t.Fatalf("error should list accepted roles: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Username: "amina", Email: "amina@masjid.test", Password: "p", Role: "auditor",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	req.Email = "other@masjid.test"
	_, err := svc.Register(ctx, req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("got %v, want AlreadyExists", err)
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Username: "bilal", Email: "bilal@masjid.test", Password: "s3cret", Role: "auditor",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(ctx, "bilal", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "bilal" || token == "" {
		t.Fatalf("login result: %q %+v", token, user)
	}

	resolved, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("authenticated wrong user: %+v", resolved)
	}

	// Wrong password and unknown username fail identically.
	_, _, err = svc.Login(ctx, "bilal", "wrong")
	wrongPass := err
	_, _, err = svc.Login(ctx, "nobody", "s3cret")
	if status.Code(wrongPass) != codes.Unauthenticated || status.Code(err) != codes.Unauthenticated {
		t.Fatalf("got %v and %v, want Unauthenticated for both", wrongPass, err)
	}
	if wrongPass.Error() != err.Error() {
		t.Fatal("unknown user and wrong password must be indistinguishable")
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("got %v, want Unauthenticated", err)
	}
}
