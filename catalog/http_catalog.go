package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL    = 15 * time.Minute
	tokenRefreshMargin = 30 * time.Second
)

// tokenCache holds the service-to-service bearer token with an explicit
// expiry. The token is re-fetched when expired and invalidated on 401, never
// held for the life of the process.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (c *tokenCache) get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || time.Now().After(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

func (c *tokenCache) set(token string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.expiresAt = expiresAt
}

func (c *tokenCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}

// tokenExpiry reads the exp claim off the issued JWT without verifying the
// signature (the remote side verifies; we only need the lifetime). Falls back
// to a fixed TTL for opaque tokens.
func tokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time.Add(-tokenRefreshMargin)
		}
	}
	return now.Add(defaultTokenTTL)
}

// HTTPCatalog reads the room catalog from a remote property-management
// service, authenticating with service credentials.
type HTTPCatalog struct {
	BaseURL  string
	Email    string
	Password string
	Client   *http.Client

	cache tokenCache
}

func NewHTTPCatalog(baseURL, email, password string) *HTTPCatalog {
	return &HTTPCatalog{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		Password: password,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPCatalog) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.Email,
		"password": c.Password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("catalog login failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("catalog login returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("catalog login returned empty token")
	}

	now := time.Now()
	c.cache.set(out.Token, tokenExpiry(out.Token, now))
	return out.Token, nil
}

func (c *HTTPCatalog) token(ctx context.Context) (string, error) {
	if tok, ok := c.cache.get(); ok {
		return tok, nil
	}
	return c.login(ctx)
}

func (c *HTTPCatalog) RoomsByHotel(ctx context.Context, hotelID uint) ([]Room, error) {
	rooms, status, err := c.fetchRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	// Token may have been revoked remotely before its exp claim ran out:
	// drop it and retry once with a fresh login.
	if status == http.StatusUnauthorized {
		c.cache.invalidate()
		rooms, status, err = c.fetchRooms(ctx, hotelID)
		if err != nil {
			return nil, err
		}
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %d for hotel %d", status, hotelID)
	}
	return rooms, nil
}

func (c *HTTPCatalog) fetchRooms(ctx context.Context, hotelID uint) ([]Room, int, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, 0, err
	}

	url := fmt.Sprintf("%s/api/rooms/hotel/%d", c.BaseURL, hotelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build rooms request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, nil
	}

	var rooms []Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode rooms response: %w", err)
	}
	return rooms, resp.StatusCode, nil
}
