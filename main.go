// Command blackjack runs a single-player blackjack table.
//
// It supports three modes:
//  1. "play" (default) - interactive table in the terminal
//  2. "server" - HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  3. "mcp" - MCP stdio server, reusing an external API server when one is running
//
// Flags control host/port, the config directory and debug logging.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/cardtable/blackjack/api"
	tablecli "github.com/cardtable/blackjack/cli"
	"github.com/cardtable/blackjack/game/config"
	"github.com/cardtable/blackjack/game/service"
	"github.com/cardtable/blackjack/game/session"
	"github.com/cardtable/blackjack/transport/mcp"
	"github.com/cardtable/blackjack/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Blackjack Table"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	godotenv.Load()

	root := newRootCommand()
	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI tree. The interactive table is the default
// command so plain "blackjack" sits you down at a table.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "blackjack",
		Usage:   "single-player blackjack at the terminal, over REST or over MCP",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing table configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		DefaultCommand: "play",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play at an interactive table in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "table",
						Usage: "table configuration to use (skips the picker)",
					},
				},
				Action: runPlay,
			},
			{
				Name:  "server",
				Usage: "run the HTTP server with REST API, WebSocket and MCP endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "host",
						Value: "localhost",
						Usage: "HTTP server host",
					},
					&cli.IntFlag{
						Name:  "port",
						Value: 8080,
						Usage: "HTTP server port",
					},
				},
				Action: runServer,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "run an MCP stdio server backed by an internal or external API server",
				Action:  runStdioMCP,
			},
		},
	}
}

// newLogger builds the application logger honoring the --debug flag
func newLogger(cmd *cli.Command) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cmd.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// initializeServices wires the config manager, session manager and game
// service from the CLI flags.
func initializeServices(configDir string) (service.GameService, *session.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, configManager)
	return gameService, sessionManager, nil
}

// runPlay starts the interactive terminal table
func runPlay(ctx context.Context, cmd *cli.Command) error {
	gameService, _, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	return tablecli.Run(ctx, gameService, cmd.String("table"))
}

// runServer starts the HTTP server with REST API, WebSocket hub and an /mcp
// proxy endpoint, and blocks until a shutdown signal arrives.
func runServer(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd)

	gameService, sessionManager, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))

	hub := websocket.NewHub(log)
	go hub.Run()

	go sessionCleanupRoutine(ctx, sessionManager, log)

	apiServer := api.NewServer(gameService, hub, log)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHTTPHandler(mcpClient))

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Handle shutdown signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Infof("%s v%s listening", AppName, Version)
		log.Infof("REST API: http://%s/api", addr)
		log.Infof("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Infof("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// mcpHTTPHandler exposes the MCP server over plain HTTP POST
func mcpHTTPHandler(mcpClient *mcp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	}
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, log *logrus.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := manager.CleanupExpiredSessions(24 * time.Hour)
			if removed > 0 {
				log.WithField("count", removed).Info("Cleaned up expired sessions")
			}
		}
	}
}

// runStdioMCP runs an MCP stdio server. It reuses an external API at
// http://localhost:8080 when one is reachable; otherwise it starts a minimal
// internal HTTP API on a random loopback port and targets that.
func runStdioMCP(ctx context.Context, cmd *cli.Command) error {
	log := newLogger(cmd)
	// MCP talks JSON-RPC on stdout, so logging goes to stderr
	log.SetOutput(os.Stderr)

	gameService, _, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	externalURL := "http://localhost:8080"
	baseURL := externalURL

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, probeErr := testClient.Get(externalURL + "/api/health")
	if probeErr == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.WithField("url", externalURL).Info("Using external API server for MCP")
	} else {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.WithField("addr", internalAddr).Info("Starting internal HTTP server for MCP stdio")

		hub := websocket.NewHub(log)
		go hub.Run()

		apiServer := api.NewServer(gameService, hub, log)
		httpServer := &http.Server{Handler: apiServer}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("Internal HTTP server error")
			}
		}()
		defer httpServer.Close()

		// Give the listener a moment before the first tool call
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	log.Info("MCP stdio server ready")
	if err := mcpserver.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server: %w", err)
	}
	return nil
}
