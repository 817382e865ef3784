package identity

import (
	"context"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, Credentials{Email: "amina@example.com", Password: "s3cret-pass", FullName: "Amina Diallo"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}

	authed, err := svc.Authenticate(ctx, Credentials{Email: "Amina@Example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected same user, got %s vs %s", authed.ID, user.ID)
	}
	if authed.LastLogin.IsZero() {
		t.Fatalf("expected last login stamped")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "user@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Email: "user@example.com", Password: "wrong-pass"}); err == nil {
		t.Fatalf("expected authentication failure")
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "not-an-email", Password: "s3cret-pass"}); err == nil {
		t.Fatalf("expected invalid email error")
	}
	if _, err := svc.Register(ctx, Credentials{Email: "user@example.com", Password: "short"}); err == nil {
		t.Fatalf("expected short password error")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "user@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, Credentials{Email: "USER@example.com", Password: "another-pass"}); err == nil {
		t.Fatalf("expected duplicate email error")
	}
}
