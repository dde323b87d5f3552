package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/token"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := token.New("test-secret", "taskflow-test", time.Hour)

	identity := domain.Identity{
		UserID: "4b8f0a50-7f2c-4bba-9c67-0d9b6a3f8f11",
		Email:  "alice@example.com",
		Role:   domain.RoleAdmin,
	}

	signed, err := svc.Issue(identity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	got, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got != identity {
		t.Fatalf("expected identity %+v, got %+v", identity, got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := token.New("test-secret", "taskflow-test", time.Nanosecond)

	signed, err := svc.Issue(domain.Identity{UserID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Verify(signed); !errors.Is(err, token.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := token.New("secret-one", "taskflow-test", time.Hour)
	verifier := token.New("secret-two", "taskflow-test", time.Hour)

	signed, err := issuer.Issue(domain.Identity{UserID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, token.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	svc := token.New("test-secret", "taskflow-test", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(input); !errors.Is(err, token.ErrTokenInvalid) {
			t.Fatalf("input %q: expected ErrTokenInvalid, got %v", input, err)
		}
	}
}

func TestDefaultTTL(t *testing.T) {
	t.Parallel()

	svc := token.New("test-secret", "taskflow-test", 0)
	if svc.TTL() != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %v", svc.TTL())
	}
}
