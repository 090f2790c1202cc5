package chatwoot

import (
	"context"
	"fmt"
	"net/url"
)

// The Chatwoot listing endpoint paginates at 25 items per page.
const PageSize = 25

// MaxPages bounds the pagination loop against an unbounded or misbehaving
// upstream: 20 pages x 25 = 500 conversations max. Larger datasets are
// silently truncated, a deliberate trade of completeness for bounded latency.
const MaxPages = 20

// RawConversation mirrors the upstream record. Optional nesting is
// inconsistent across inbox types, so contact data appears under meta.sender
// on some inboxes and under contact on others; timestamps arrive as epoch
// seconds, epoch milliseconds or ISO strings depending on the field.
type RawConversation struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Meta   struct {
		Sender struct {
			Name        string `json:"name"`
			PhoneNumber string `json:"phone_number"`
		} `json:"sender"`
		Inbox struct {
			Name string `json:"name"`
		} `json:"inbox"`
		Assignee *struct {
			Name string `json:"name"`
		} `json:"assignee"`
	} `json:"meta"`
	Contact struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
	} `json:"contact"`
	LastNonActivityMessage *struct {
		Content string `json:"content"`
	} `json:"last_non_activity_message"`
	Messages []struct {
		Content string `json:"content"`
	} `json:"messages"`
	LastActivityAt any `json:"last_activity_at"`
	UpdatedAt      any `json:"updated_at"`
	CreatedAt      any `json:"created_at"`
	MessagesCount  int `json:"messages_count"`
	InboxID        int `json:"inbox_id"`
}

// Chatwoot has shipped both {"data":{"payload":[...]}} and {"payload":[...]}
// envelopes for this endpoint.
type listResponse struct {
	Data struct {
		Payload []RawConversation `json:"payload"`
	} `json:"data"`
	Payload []RawConversation `json:"payload"`
}

func (r *listResponse) conversations() []RawConversation {
	if r.Data.Payload != nil {
		return r.Data.Payload
	}
	return r.Payload
}

// ListConversations retrieves the full conversation set for the account by
// walking the paginated listing sequentially from page 1. It stops on an
// empty page, a short page, or the MaxPages ceiling. Any upstream failure
// aborts the walk; partially accumulated pages are discarded.
func (c *Client) ListConversations(ctx context.Context, status string) ([]RawConversation, error) {
	if status == "" {
		status = "all"
	}

	var all []RawConversation
	for page := 1; page <= MaxPages; page++ {
		items, err := c.fetchPage(ctx, status, page)
		if err != nil {
			return nil, err
		}

		if len(items) == 0 {
			break
		}

		all = append(all, items...)

		if len(items) < PageSize {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, status string, page int) ([]RawConversation, error) {
	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s/conversations?status=%s&page=%d",
		c.config.BaseURL, c.config.AccountID, url.QueryEscape(status), page)

	var response listResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.conversations(), nil
}
