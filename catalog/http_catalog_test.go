package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type fakeCatalogServer struct {
	token      string
	loginCount int
}

func (f *fakeCatalogServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.loginCount++
		json.NewEncoder(w).Encode(map[string]string{"token": f.token})
	})

	mux.HandleFunc("/api/rooms/hotel/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]Room{
			{ID: 1, HotelID: 1, Type: "Standard", Capacity: 2},
			{ID: 2, HotelID: 1, Type: "Deluxe", Capacity: 4},
		})
	})

	return mux
}

func TestHTTPCatalogCachesToken(t *testing.T) {
	fake := &fakeCatalogServer{token: "tok-1"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewHTTPCatalog(srv.URL, "svc@example.com", "secret")

	for i := 0; i < 3; i++ {
		rooms, err := c.RoomsByHotel(context.Background(), 1)
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if len(rooms) != 2 {
			t.Fatalf("call %d: expected 2 rooms, got %d", i, len(rooms))
		}
	}

	if fake.loginCount != 1 {
		t.Fatalf("token must be cached across calls, got %d logins", fake.loginCount)
	}
}

func TestHTTPCatalogRefreshesOn401(t *testing.T) {
	fake := &fakeCatalogServer{token: "tok-2"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewHTTPCatalog(srv.URL, "svc@example.com", "secret")

	// Simulate a token revoked server-side while still fresh locally.
	c.cache.set("revoked", time.Now().Add(time.Hour))

	rooms, err := c.RoomsByHotel(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected refresh on 401 to recover, got %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms after refresh, got %d", len(rooms))
	}
	if fake.loginCount != 1 {
		t.Fatalf("expected exactly one re-login, got %d", fake.loginCount)
	}
}

func TestTokenExpiryFromJWTClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	got := tokenExpiry(tok, time.Now())
	want := exp.Add(-tokenRefreshMargin)
	if !got.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, got)
	}
}

func TestTokenExpiryFallbackForOpaqueToken(t *testing.T) {
	now := time.Now()
	got := tokenExpiry("not-a-jwt", now)
	if !got.Equal(now.Add(defaultTokenTTL)) {
		t.Fatalf("opaque token must get the default TTL, got %v", got)
	}
}

func TestTokenCacheExpires(t *testing.T) {
	var c tokenCache
	c.set("tok", time.Now().Add(-time.Second))
	if _, ok := c.get(); ok {
		t.Fatalf("expired token must not be served")
	}

	c.set("tok", time.Now().Add(time.Minute))
	if tok, ok := c.get(); !ok || tok != "tok" {
		t.Fatalf("fresh token must be served, got %q ok=%v", tok, ok)
	}

	c.invalidate()
	if _, ok := c.get(); ok {
		t.Fatalf("invalidated token must not be served")
	}
}
