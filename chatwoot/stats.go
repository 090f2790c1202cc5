package chatwoot

import (
	"time"

	"github.com/gps-estudio/sofia-dashboard/timefmt"
)

// Stats summarizes the full conversation set fetched within one request.
type Stats struct {
	TotalConversations   int    `json:"totalConversations"`
	OpenConversations    int    `json:"openConversations"`
	ResolvedToday        int    `json:"resolvedToday"`
	PendingConversations int    `json:"pendingConversations"`
	Error                string `json:"error,omitempty"`
}

// ComputeStats derives counts from the accumulated conversation set.
// resolvedToday counts resolved conversations whose effective activity
// timestamp falls within the current local calendar day: inclusive of local
// midnight, exclusive of the next.
func ComputeStats(conversations []RawConversation, now time.Time) Stats {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nextMidnight := midnight.AddDate(0, 0, 1)

	stats := Stats{TotalConversations: len(conversations)}

	for _, conv := range conversations {
		switch conv.Status {
		case "open":
			stats.OpenConversations++
		case "pending":
			stats.PendingConversations++
		case "resolved":
			resolvedAt, ok := timefmt.Parse(coalesceTimestamp(conv.LastActivityAt, conv.UpdatedAt))
			if ok && !resolvedAt.Before(midnight) && resolvedAt.Before(nextMidnight) {
				stats.ResolvedToday++
			}
		}
	}

	return stats
}
