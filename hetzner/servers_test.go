package hetzner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func rawServerFromJSON(t *testing.T, data string) rawServer {
	t.Helper()
	var raw rawServer
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		t.Fatalf("Failed to unmarshal server: %v", err)
	}
	return raw
}

func TestResolveMonthlyPrice(t *testing.T) {
	testCases := []struct {
		name     string
		server   string
		expected float64
	}{
		{
			name: "location match",
			server: `{
				"datacenter": {"location": {"name": "fsn1"}},
				"server_type": {"prices": [
					{"location": "ash", "price_monthly": {"gross": "12.90"}},
					{"location": "fsn1", "price_monthly": {"gross": "5.83"}}
				]}
			}`,
			expected: 5.83,
		},
		{
			name: "unknown location falls back to first entry",
			server: `{
				"datacenter": {"location": {"name": "sin1"}},
				"server_type": {"prices": [
					{"location": "ash", "price_monthly": {"gross": "12.90"}},
					{"location": "fsn1", "price_monthly": {"gross": "5.83"}}
				]}
			}`,
			expected: 12.90,
		},
		{
			name: "uppercase location code still matches",
			server: `{
				"datacenter": {"location": {"name": "NBG1"}},
				"server_type": {"prices": [
					{"location": "nbg1", "price_monthly": {"gross": "4.51"}}
				]}
			}`,
			expected: 4.51,
		},
		{
			name:     "empty price table",
			server:   `{"datacenter": {"location": {"name": "fsn1"}}, "server_type": {"prices": []}}`,
			expected: 0,
		},
		{
			name: "unparseable gross price",
			server: `{
				"datacenter": {"location": {"name": "fsn1"}},
				"server_type": {"prices": [{"location": "fsn1", "price_monthly": {"gross": "free"}}]}
			}`,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveMonthlyPrice(rawServerFromJSON(t, tc.server))
			if got != tc.expected {
				t.Errorf("resolveMonthlyPrice = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestListServers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer auth, got %q", auth)
		}
		w.Write([]byte(`{
			"servers": [
				{
					"id": 101,
					"name": "sofia-bot",
					"status": "running",
					"server_type": {
						"name": "cpx21",
						"description": "CPX 21",
						"cores": 3,
						"memory": 4.0,
						"disk": 80,
						"prices": [{"location": "fsn1", "price_monthly": {"gross": "8.98", "net": "7.55"}}]
					},
					"datacenter": {"name": "fsn1-dc14", "location": {"name": "fsn1", "city": "Falkenstein", "country": "DE"}},
					"public_net": {"ipv4": {"ip": "116.203.0.1"}},
					"created": "2024-01-15T10:00:00+00:00"
				},
				{
					"id": 102,
					"name": "sofia-db",
					"status": "running",
					"server_type": {
						"name": "cx11",
						"cores": 1,
						"memory": 2.0,
						"disk": 20,
						"prices": [{"location": "fsn1", "price_monthly": {"gross": "4.51", "net": "3.79"}}]
					},
					"datacenter": {"name": "fsn1-dc14", "location": {"name": "fsn1", "city": "Falkenstein", "country": "DE"}},
					"public_net": {"ipv4": {"ip": "116.203.0.2"}},
					"created": "2024-02-01T08:30:00+00:00"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-token", server.URL, http.Client{})
	report, err := client.ListServers(context.Background())
	if err != nil {
		t.Fatalf("ListServers returned error: %v", err)
	}

	if len(report.Servers) != 2 {
		t.Fatalf("Expected 2 servers, got %d", len(report.Servers))
	}

	first := report.Servers[0]
	if first.Name != "sofia-bot" || first.Type != "CPX 21" || first.Location != "Falkenstein" {
		t.Errorf("Unexpected first server: %+v", first)
	}
	if first.MonthlyPrice != 8.98 {
		t.Errorf("MonthlyPrice = %v, expected 8.98", first.MonthlyPrice)
	}

	// cx11 has no description, falls back to the type name.
	if report.Servers[1].Type != "cx11" {
		t.Errorf("Type = %q, expected fallback to type name", report.Servers[1].Type)
	}

	if report.TotalMonthlyCost != 8.98+4.51 {
		t.Errorf("TotalMonthlyCost = %v, expected %v", report.TotalMonthlyCost, 8.98+4.51)
	}
	if report.Currency != "EUR" || report.Provider != "Hetzner Cloud" {
		t.Errorf("Unexpected report metadata: %+v", report)
	}
}

func TestListServers_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("bad-token", server.URL, http.Client{})
	if _, err := client.ListServers(context.Background()); err == nil {
		t.Fatal("Expected error from failing upstream, got nil")
	}
}
