package hetzner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type rawServer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	ServerType struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Cores       int     `json:"cores"`
		Memory      float64 `json:"memory"`
		Disk        int     `json:"disk"`
		Prices      []struct {
			Location     string `json:"location"`
			PriceMonthly struct {
				Gross string `json:"gross"`
				Net   string `json:"net"`
			} `json:"price_monthly"`
		} `json:"prices"`
	} `json:"server_type"`
	Datacenter struct {
		Name     string `json:"name"`
		Location struct {
			Name    string `json:"name"`
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"location"`
	} `json:"datacenter"`
	PublicNet struct {
		IPv4 struct {
			IP string `json:"ip"`
		} `json:"ipv4"`
	} `json:"public_net"`
	Created string `json:"created"`
}

// Server is the dashboard view of one cloud server with its resolved
// monthly price.
type Server struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Type         string  `json:"type"`
	TypeName     string  `json:"typeName"`
	Cores        int     `json:"cores"`
	Memory       float64 `json:"memory"`
	Disk         int     `json:"disk"`
	Location     string  `json:"location"`
	Country      string  `json:"country"`
	IP           string  `json:"ip"`
	MonthlyPrice float64 `json:"monthlyPrice"`
	Currency     string  `json:"currency"`
	Created      string  `json:"created"`
}

// CostReport carries the server list and its aggregated monthly cost.
type CostReport struct {
	Servers          []Server `json:"servers"`
	TotalMonthlyCost float64  `json:"totalMonthlyCost"`
	Currency         string   `json:"currency"`
	Provider         string   `json:"provider"`
	FetchedAt        string   `json:"fetchedAt"`
	Error            string   `json:"error,omitempty"`
}

// Datacenter codes with a known entry in the per-location price tables.
var knownPriceLocations = map[string]string{
	"ash":  "ash",  // Ashburn
	"hil":  "hil",  // Hillsboro
	"fsn1": "fsn1", // Falkenstein
	"nbg1": "nbg1", // Nuremberg
	"hel1": "hel1", // Helsinki
}

// ListServers fetches the account's servers and resolves each one's monthly
// price from its server type's per-location price table.
func (c *Client) ListServers(ctx context.Context) (CostReport, error) {
	endpoint := c.config.BaseURL + "/servers"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return CostReport{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CostReport{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CostReport{}, fmt.Errorf("Hetzner API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CostReport{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var response struct {
		Servers []rawServer `json:"servers"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return CostReport{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	report := CostReport{
		Servers:   make([]Server, 0, len(response.Servers)),
		Currency:  "EUR",
		Provider:  "Hetzner Cloud",
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, raw := range response.Servers {
		server := transformServer(raw)
		report.TotalMonthlyCost += server.MonthlyPrice
		report.Servers = append(report.Servers, server)
	}

	return report, nil
}

func transformServer(raw rawServer) Server {
	location := raw.Datacenter.Location.City
	if location == "" {
		location = raw.Datacenter.Name
	}

	serverType := raw.ServerType.Description
	if serverType == "" {
		serverType = raw.ServerType.Name
	}

	return Server{
		ID:           raw.ID,
		Name:         raw.Name,
		Status:       raw.Status,
		Type:         serverType,
		TypeName:     raw.ServerType.Name,
		Cores:        raw.ServerType.Cores,
		Memory:       raw.ServerType.Memory,
		Disk:         raw.ServerType.Disk,
		Location:     location,
		Country:      raw.Datacenter.Location.Country,
		IP:           raw.PublicNet.IPv4.IP,
		MonthlyPrice: resolveMonthlyPrice(raw),
		Currency:     "EUR",
		Created:      raw.Created,
	}
}

// resolveMonthlyPrice matches the server's datacenter location code against
// the server type's price table. Unknown codes are tried verbatim; with no
// match the first price entry applies; an empty table prices at zero.
func resolveMonthlyPrice(raw rawServer) float64 {
	prices := raw.ServerType.Prices
	if len(prices) == 0 {
		return 0
	}

	locationCode := strings.ToLower(raw.Datacenter.Location.Name)
	priceLocation := locationCode
	if mapped, ok := knownPriceLocations[locationCode]; ok {
		priceLocation = mapped
	}

	priceInfo := prices[0]
	for _, p := range prices {
		if p.Location == priceLocation {
			priceInfo = p
			break
		}
	}

	monthly, err := strconv.ParseFloat(priceInfo.PriceMonthly.Gross, 64)
	if err != nil {
		return 0
	}
	return monthly
}
