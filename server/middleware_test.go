package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gps-estudio/sofia-dashboard/chatwoot"
	"github.com/gps-estudio/sofia-dashboard/config"
	"github.com/gps-estudio/sofia-dashboard/hetzner"
	"github.com/gps-estudio/sofia-dashboard/promptcfg"
)

func newTestServer() *Server {
	cfg := &config.Config{
		DashboardUser:     "admin",
		DashboardPassword: "secret",
		BotURL:            "http://bot.invalid",
	}

	chatwootClient := chatwoot.NewClient("", "", "", http.Client{})
	hetznerClient := hetzner.NewClient("", http.Client{})

	return New(cfg, chatwootClient, hetznerClient, promptcfg.NewMemoryStore())
}

func TestSessionGate_MissingCookieRedirectsToLogin(t *testing.T) {
	server := newTestServer()

	paths := []string{"/", "/api/hetzner", "/api/chatwoot/stats", "/api/prompt", "/sessions"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := server.app.Test(req)
		if err != nil {
			t.Fatalf("Test(%s) returned error: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusFound {
			t.Errorf("GET %s without cookie: status %d, expected %d", path, resp.StatusCode, http.StatusFound)
		}
		if location := resp.Header.Get("Location"); location != "/login" {
			t.Errorf("GET %s without cookie: Location %q, expected /login", path, location)
		}
	}
}

func TestSessionGate_CookiePassesThrough(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/hetzner", nil)
	req.Header.Set("Cookie", "auth=admin")

	resp, err := server.app.Test(req)
	if err != nil {
		t.Fatalf("Test returned error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}
}

func TestSessionGate_PublicPathsSkipTheCheck(t *testing.T) {
	server := newTestServer()

	paths := []string{"/login", "/api/auth/login", "/favicon.ico"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := server.app.Test(req)
		if err != nil {
			t.Fatalf("Test(%s) returned error: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusFound {
			t.Errorf("GET %s was redirected, expected the gate to allow it", path)
		}
	}
}
