package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-car-market/internal/agent/config"
)

func TestNewRegisterCmd_Success_PrintsUserID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Username != "tester" {
			t.Fatalf("expected username tester, got %q", req.Username)
		}
		if req.Email != "test@example.com" {
			t.Fatalf("expected email test@example.com, got %q", req.Email)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":       42,
			"username": req.Username,
			"email":    req.Email,
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--username", "tester",
		"--email", "test@example.com",
		"--password", "StrongPass123",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "registration successful (user id=42)") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewRegisterCmd_MissingRequiredFlags_ReturnsError(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:8080",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetArgs([]string{
		"--email", "test@example.com",
		// --username пропущен
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Занятый username: сервер отвечает 400 с detail, команда возвращает его как ошибку
func TestNewRegisterCmd_UsernameTaken_ReturnsDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "username already in use"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetArgs([]string{
		"--username", "tester",
		"--email", "test@example.com",
		"--password", "StrongPass123",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "username already in use") {
		t.Fatalf("unexpected error: %v", err)
	}
}
