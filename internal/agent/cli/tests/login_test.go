package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-car-market/internal/agent/config"
)

func TestNewLoginCmd_Success_SavesTokenAndPrintsMessage(t *testing.T) {
	// HTTPS тестовый сервер
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "test@example.com" {
			t.Fatalf("expected email test@example.com, got %q", req.Email)
		}
		if req.Password != "StrongPass123" {
			t.Fatalf("expected password StrongPass123, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "access-1",
			"token_type":   "bearer",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	// временный путь под креды
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password", "StrongPass123",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "login ok (token saved)") {
		t.Fatalf("unexpected output: %q", got)
	}

	// проверим, что токен реально сохранился в файл
	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.AccessToken != "access-1" {
		t.Fatalf("expected AccessToken=access-1, got %q", loaded.AccessToken)
	}
	if loaded.TokenType != "bearer" {
		t.Fatalf("expected TokenType=bearer, got %q", loaded.TokenType)
	}
}

func TestNewLoginCmd_MissingRequiredEmail_ReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: "https://127.0.0.1:8080",
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetArgs([]string{
		"--password", "StrongPass123",
		// --email пропущен
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	// Cobra обычно пишет "required flag(s) \"email\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewLoginCmd_ServerReturnsError_DoesNotWriteCredsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "incorrect email or password"})
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

	cmd := cli.NewLoginCmd(app)
	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password", "wrong",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "incorrect email or password") {
		t.Fatalf("unexpected error: %v", err)
	}

	// файл не обязан существовать (и лучше, чтобы не появлялся)
	if _, statErr := os.Stat(credsPath); statErr == nil {
		// Если всё же создался — это плохо: токен не должен сохраняться при ошибке логина
		t.Fatalf("creds file should not be created on login error")
	}
}

// --password-stdin читает пароль из stdin (для скриптов/CI)
func TestNewLoginCmd_PasswordStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Password != "FromStdin123" {
			t.Fatalf("expected password FromStdin123, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "access-1",
			"token_type":   "bearer",
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

	cmd := cli.NewLoginCmd(app)
	cmd.SetIn(strings.NewReader("FromStdin123\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password-stdin",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
