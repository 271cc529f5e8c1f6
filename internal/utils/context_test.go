// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/joycesaquino/customer/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTokenCtxKey(t *testing.T) {
	if TokenCtxKey.String() != "token" {
		t.Errorf("expected 'token', got '%s'", TokenCtxKey.String())
	}
}

func TestGetTokenFromContext_Success(t *testing.T) {
	want := models.Token{Subject: "alice", Authorities: []string{"ROLE_admin"}}
	ctx := context.WithValue(context.Background(), TokenCtxKey, want)

	token, ok := GetTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token.Subject != "alice" {
		t.Errorf("expected subject=alice, got %s", token.Subject)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	token, ok := GetTokenFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if token.Subject != "" {
		t.Errorf("expected empty subject, got %s", token.Subject)
	}
}

func TestGetTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "not-a-token")

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetTokenFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.Token{Subject: "bob"})

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetAuthoritiesFromContext(t *testing.T) {
	if got := GetAuthoritiesFromContext(context.Background()); got != nil {
		t.Errorf("expected nil authorities for anonymous context, got %v", got)
	}

	ctx := context.WithValue(context.Background(), TokenCtxKey, models.Token{Authorities: []string{"ROLE_user"}})
	got := GetAuthoritiesFromContext(ctx)
	if len(got) != 1 || got[0] != "ROLE_user" {
		t.Errorf("expected [ROLE_user], got %v", got)
	}
}
