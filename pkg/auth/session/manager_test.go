package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AccessSessionKey(accessID string) string {
	return fmt.Sprintf("sess:%s", accessID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{store: store, keyer: store, ttl: time.Hour}
}

func TestGenerateStoresToken(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)

	token, err := manager.Generate(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if store.data["sess:access-1"] != token {
		t.Fatalf("token not stored under session key")
	}

	if _, err := manager.Generate(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank access id")
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	token, err := manager.Generate(ctx, "access-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	newAccessID, newToken, err := manager.Rotate(ctx, "access-1", token)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if newAccessID == "access-1" {
		t.Fatalf("rotation must issue a new access id")
	}
	if newToken == token {
		t.Fatalf("rotation must issue a new refresh token")
	}
	if _, ok := store.data["sess:access-1"]; ok {
		t.Fatalf("old session should be removed after rotation")
	}
	if store.data["sess:"+newAccessID] != newToken {
		t.Fatalf("new session not stored")
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if _, err := manager.Generate(ctx, "access-1"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, _, err := manager.Rotate(ctx, "access-1", "forged-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := manager.Rotate(ctx, "unknown", "anything"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for unknown session, got %v", err)
	}
}

func TestRevokeAndHasSession(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if _, err := manager.Generate(ctx, "access-1"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	active, err := manager.HasSession(ctx, "access-1")
	if err != nil {
		t.Fatalf("has session failed: %v", err)
	}
	if !active {
		t.Fatalf("expected active session")
	}

	if err := manager.Revoke(ctx, "access-1"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	active, err = manager.HasSession(ctx, "access-1")
	if err != nil {
		t.Fatalf("has session failed: %v", err)
	}
	if active {
		t.Fatalf("expected session gone after revoke")
	}
}
