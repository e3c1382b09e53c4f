package session

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cardtable/blackjack/game/engine"
)

func createTestConfig() *engine.TableConfig {
	return engine.DefaultTableConfig()
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session, err := manager.Create("test", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if session.ID != "test" {
		t.Errorf("Expected session ID test, got %s", session.ID)
	}
	if session.Engine == nil {
		t.Error("Expected session to have an engine")
	}
	if session.Config != config {
		t.Error("Expected session to hold the provided config")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", manager.Count())
	}
}

func TestManager_Create_GeneratedID(t *testing.T) {
	manager := NewManager()

	session, err := manager.Create("", createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if len(session.ID) != 4 {
		t.Errorf("Expected 4-character generated ID, got %q", session.ID)
	}
}

func TestManager_Create_Duplicate(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	if _, err := manager.Create("dupe", config); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if _, err := manager.Create("dupe", config); err != ErrSessionAlreadyExists {
		t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
	}

	// Case-insensitive collision
	if _, err := manager.Create("DUPE", config); err != ErrSessionAlreadyExists {
		t.Errorf("Expected ErrSessionAlreadyExists for different case, got %v", err)
	}
}

func TestManager_Create_InvalidConfig(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()
	config.Decks = 0

	if _, err := manager.Create("bad", config); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()

	created, err := manager.Create("abcd", createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	session, err := manager.Get("abcd")
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if session != created {
		t.Error("Expected the same session instance")
	}

	// Case-insensitive lookup
	session, err = manager.Get("ABCD")
	if err != nil {
		t.Fatalf("Failed to get session with different case: %v", err)
	}
	if session != created {
		t.Error("Expected case-insensitive lookup to find the session")
	}

	if _, err := manager.Get("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	first, err := manager.GetOrCreate("shared", config)
	if err != nil {
		t.Fatalf("Failed to get or create: %v", err)
	}

	second, err := manager.GetOrCreate("shared", config)
	if err != nil {
		t.Fatalf("Failed to get or create existing: %v", err)
	}

	if first != second {
		t.Error("Expected GetOrCreate to return the existing session")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", manager.Count())
	}
}

func TestManager_List(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	if len(manager.List()) != 0 {
		t.Error("Expected empty list initially")
	}

	manager.Create("one", config)
	manager.Create("two", config)

	if got := len(manager.List()); got != 2 {
		t.Errorf("Expected 2 sessions, got %d", got)
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()

	manager.Create("gone", createTestConfig())

	if err := manager.Delete("GONE"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if manager.Count() != 0 {
		t.Errorf("Expected 0 sessions after delete, got %d", manager.Count())
	}

	if err := manager.Delete("gone"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()

	session, err := manager.Create("tick", createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	before := session.LastAccessedAt
	time.Sleep(5 * time.Millisecond)

	if err := manager.UpdateLastAccessed("tick"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}

	if err := manager.UpdateLastAccessed("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	stale, _ := manager.Create("stale", config)
	manager.Create("fresh", config)

	// Age the stale session beyond the cutoff
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := manager.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session remaining, got %d", manager.Count())
	}
	if _, err := manager.Get("fresh"); err != nil {
		t.Error("Expected the fresh session to survive cleanup")
	}
}

func TestManager_GeneratedIDsAreHex(t *testing.T) {
	manager := NewManager()

	for i := 0; i < 10; i++ {
		session, err := manager.Create("", createTestConfig())
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character ID, got %q", session.ID)
		}
		if strings.ToLower(session.ID) != session.ID {
			t.Errorf("Expected lowercase hex ID, got %q", session.ID)
		}
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session, err := manager.Create(fmt.Sprintf("sess%02d", n), config)
			if err != nil {
				t.Errorf("Concurrent create failed: %v", err)
				return
			}
			if _, err := manager.Get(session.ID); err != nil {
				t.Errorf("Concurrent get failed: %v", err)
			}
			manager.UpdateLastAccessed(session.ID)
		}(i)
	}
	wg.Wait()

	if manager.Count() != 20 {
		t.Errorf("Expected 20 sessions, got %d", manager.Count())
	}
}
