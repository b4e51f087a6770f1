package token

import (
	"errors"
	"testing"
	"time"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue(domain.Identity{SubjectID: "user-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	identity, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.SubjectID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", identity.SubjectID)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", identity.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("secret", time.Millisecond)

	signed, err := svc.Issue(domain.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := svc.Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewService("secret-a", time.Hour).Issue(domain.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewService("secret-b", time.Hour).Verify(signed); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	svc := NewService("secret", time.Hour)
	signed, err := svc.Issue(domain.Identity{SubjectID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte in the payload; either the signature check or the
	// decode must reject it.
	tampered := []byte(signed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	if !errors.Is(err, ErrTokenSignature) && !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected signature or malformed error, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewService_TTLFallback(t *testing.T) {
	svc := NewService("secret", 0)
	if svc.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, svc.ttl)
	}
}
