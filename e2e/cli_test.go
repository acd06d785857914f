package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronle/chronle/internal/api"
	"github.com/chronle/chronle/internal/factory"
	"github.com/chronle/chronle/internal/model"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "chronle-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/chronle")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	// Load an event for the current game day
	today := app.GamedayService.Today()
	err = app.EventsService.Load(context.Background(), []model.Event{
		{
			Date:     today,
			Year:     1969,
			Category: "Space",
			Clues: []string{
				"A giant leap was taken far from home",
				"Two men walked where no one had before",
				"The Eagle has landed",
			},
			Answer:     "Apollo 11 moon landing",
			AltAnswers: []string{"moon landing"},
			Summary:    "Apollo 11 landed the first humans on the Moon.",
		},
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		GameController:     app.GameController,
		LeaderboardService: app.LeaderboardService,
		StatsService:       app.StatsService,
		GamedayService:     app.GamedayService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Player struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		IsGuest     bool   `json:"is_guest"`
	} `json:"player"`
	SessionToken string `json:"session_token"`
}

type startResponse struct {
	SessionID  string `json:"session_id"`
	Date       string `json:"date"`
	Clue       string `json:"clue"`
	TotalClues int    `json:"total_clues"`
	Year       int    `json:"year"`
}

type guessResponse struct {
	Correct   bool   `json:"correct"`
	ClueIndex int    `json:"clue_index"`
	NextClue  string `json:"next_clue"`
	GameOver  bool   `json:"game_over"`
	Answer    string `json:"answer"`
}

type finishResponse struct {
	Status string `json:"status"`
	Rank   int    `json:"rank"`
	Win    bool   `json:"win"`
	Entry  struct {
		Name      string `json:"name"`
		SolveTime string `json:"solve_time"`
		CluesUsed int    `json:"clues_used"`
	} `json:"entry"`
	Record *struct {
		Username  string `json:"username"`
		Streak    int    `json:"streak"`
		TotalWins int    `json:"total_wins"`
	} `json:"record"`
}

type leaderboardResponse struct {
	Date    string `json:"date"`
	Entries []struct {
		Name      string `json:"name"`
		SolveTime string `json:"solve_time"`
		CluesUsed int    `json:"clues_used"`
	} `json:"entries"`
}

func TestHealthCommand(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()
	cli := newCLIRunner(t, server.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "ok")
}

func TestGuestPlayFlow(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()
	cli := newCLIRunner(t, server.addr)

	// Create a guest and confirm the token was saved
	output, err := cli.run("player", "guest", "--name", "E2E Guest")
	require.NoError(t, err, "output: %s", output)

	var auth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth))
	assert.True(t, auth.Player.IsGuest)

	token, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, auth.SessionToken, string(token))

	// Start today's game
	output, err = cli.run("game", "start")
	require.NoError(t, err, "output: %s", output)

	var start startResponse
	require.NoError(t, json.Unmarshal([]byte(output), &start))
	require.NotEmpty(t, start.SessionID)
	assert.Equal(t, 1969, start.Year)

	// A wrong guess reveals the next clue
	output, err = cli.run("game", "guess", "--session", start.SessionID, "--clue", "0", "sinking", "of", "the", "titanic")
	require.NoError(t, err, "output: %s", output)

	var guess guessResponse
	require.NoError(t, json.Unmarshal([]byte(output), &guess))
	assert.False(t, guess.Correct)
	assert.NotEmpty(t, guess.NextClue)

	// A correct guess on the next clue
	output, err = cli.run("game", "guess", "--session", start.SessionID, "--clue", "1", "moon", "landing")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &guess))
	assert.True(t, guess.Correct)

	// Finish and check the rank
	output, err = cli.run("game", "finish", "--session", start.SessionID, "--name", "E2E Guest")
	require.NoError(t, err, "output: %s", output)

	var finish finishResponse
	require.NoError(t, json.Unmarshal([]byte(output), &finish))
	assert.True(t, finish.Win)
	assert.Equal(t, 1, finish.Rank)
	assert.Equal(t, 2, finish.Entry.CluesUsed)

	// The entry is on the leaderboard
	output, err = cli.run("leaderboard")
	require.NoError(t, err, "output: %s", output)

	var board leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Entries, 1)
	assert.Equal(t, "E2E Guest", board.Entries[0].Name)
}

func TestRegisteredPlayerStats(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()
	cli := newCLIRunner(t, server.addr)

	output, err := cli.run("player", "register", "--name", "E2E Alice", "--user", "e2e_alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var auth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth))
	assert.False(t, auth.Player.IsGuest)

	// Win today's game
	output, err = cli.run("game", "start")
	require.NoError(t, err, "output: %s", output)

	var start startResponse
	require.NoError(t, json.Unmarshal([]byte(output), &start))

	output, err = cli.run("game", "guess", "--session", start.SessionID, "--clue", "0", "apollo", "11", "moon", "landing")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("game", "finish", "--session", start.SessionID)
	require.NoError(t, err, "output: %s", output)

	var finish finishResponse
	require.NoError(t, json.Unmarshal([]byte(output), &finish))
	require.NotNil(t, finish.Record)
	assert.Equal(t, "e2e_alice", finish.Record.Username)
	assert.Equal(t, 1, finish.Record.Streak)

	// Stats command reflects the win
	output, err = cli.run("player", "stats")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, `"total_wins": 1`)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()
	cli := newCLIRunner(t, server.addr)

	output, err := cli.run("player", "login", "--user", "nobody", "--pass", "nothing")
	require.Error(t, err)
	assert.True(t, strings.Contains(output, "INVALID_CREDENTIALS") || strings.Contains(output, "Invalid username"))
}
