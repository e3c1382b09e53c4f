package main

import (
	"os"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestNewRootCommand(t *testing.T) {
	root := newRootCommand()

	if root.Name != "blackjack" {
		t.Errorf("Expected command name 'blackjack', got %s", root.Name)
	}

	if root.DefaultCommand != "play" {
		t.Errorf("Expected default command 'play', got %s", root.DefaultCommand)
	}

	names := map[string]bool{}
	for _, cmd := range root.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"play", "server", "mcp"} {
		if !names[want] {
			t.Errorf("Missing command %q", want)
		}
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	gameService, sessionManager, err := initializeServices("configs")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
	if sessionManager == nil {
		t.Fatal("Expected session manager to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	_, _, err := initializeServices("/non/existent/path")
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// Note: runServer and runStdioMCP start servers and block; they are exercised
// through the api and mcp package tests rather than here.
