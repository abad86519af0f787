package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	tm := NewTokenManager("acc-secret", "ref-secret", time.Minute, time.Hour)

	access, refresh, exp, err := tm.GeneratePair("user-42")
	if err != nil {
		t.Fatal(err)
	}
	if access == "" || refresh == "" || exp.Before(time.Now()) {
		t.Fatal("bad token pair")
	}

	claims, isRefresh, err := tm.ParseAny(access)
	if err != nil {
		t.Fatal(err)
	}
	if isRefresh || claims.UserID != "user-42" {
		t.Fatalf("access parse: isRefresh=%v uid=%q", isRefresh, claims.UserID)
	}

	claims, isRefresh, err = tm.ParseAny(refresh)
	if err != nil {
		t.Fatal(err)
	}
	if !isRefresh || claims.UserID != "user-42" {
		t.Fatalf("refresh parse: isRefresh=%v uid=%q", isRefresh, claims.UserID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("acc-secret", "ref-secret", time.Minute, time.Hour)
	other := NewTokenManager("not-the-secret", "also-not", time.Minute, time.Hour)

	access, _, _, err := issuer.GeneratePair("user-42")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := other.ParseAny(access); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("acc-secret", "ref-secret", -time.Minute, -time.Minute)

	access, _, _, err := tm.GeneratePair("user-42")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tm.ParseAny(access); err == nil {
		t.Fatal("expected error for expired token")
	}
}
