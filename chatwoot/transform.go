package chatwoot

import (
	"github.com/gps-estudio/sofia-dashboard/timefmt"
)

// Conversation is the normalized shape the dashboard renders. The raw
// timestamp values are kept alongside their display rendering so the screens
// never have to interpret the upstream's mixed epoch/string formats.
type Conversation struct {
	ID                    int     `json:"id"`
	ContactName           string  `json:"contactName"`
	PhoneNumber           string  `json:"phoneNumber"`
	Status                string  `json:"status"`
	LastMessage           string  `json:"lastMessage"`
	LastActivityAt        any     `json:"lastActivityAt"`
	LastActivityAtDisplay string  `json:"lastActivityAtDisplay"`
	CreatedAt             any     `json:"createdAt"`
	CreatedAtDisplay      string  `json:"createdAtDisplay"`
	MessagesCount         int     `json:"messagesCount"`
	InboxID               int     `json:"inboxId"`
	InboxName             string  `json:"inboxName"`
	Assignee              *string `json:"assignee"`
}

// Transform maps one raw upstream record to the dashboard shape. Each field
// tries its source paths in priority order and falls back to a default, so a
// record missing any optional nesting still produces a usable row.
func Transform(raw RawConversation) Conversation {
	lastActivity := coalesceTimestamp(raw.LastActivityAt, raw.UpdatedAt)

	conv := Conversation{
		ID:                    raw.ID,
		ContactName:           firstNonEmpty(raw.Meta.Sender.Name, raw.Contact.Name, "Sin nombre"),
		PhoneNumber:           firstNonEmpty(raw.Meta.Sender.PhoneNumber, raw.Contact.PhoneNumber, "N/A"),
		Status:                raw.Status,
		LastMessage:           lastMessageContent(raw),
		LastActivityAt:        lastActivity,
		LastActivityAtDisplay: timefmt.Format(lastActivity),
		CreatedAt:             raw.CreatedAt,
		CreatedAtDisplay:      timefmt.Format(raw.CreatedAt),
		MessagesCount:         raw.MessagesCount,
		InboxID:               raw.InboxID,
		InboxName:             firstNonEmpty(raw.Meta.Inbox.Name, "Inbox"),
	}

	if raw.Meta.Assignee != nil && raw.Meta.Assignee.Name != "" {
		name := raw.Meta.Assignee.Name
		conv.Assignee = &name
	}

	return conv
}

// TransformAll normalizes a full fetched set, preserving upstream order.
func TransformAll(raw []RawConversation) []Conversation {
	conversations := make([]Conversation, 0, len(raw))
	for _, r := range raw {
		conversations = append(conversations, Transform(r))
	}
	return conversations
}

func lastMessageContent(raw RawConversation) string {
	if raw.LastNonActivityMessage != nil && raw.LastNonActivityMessage.Content != "" {
		return raw.LastNonActivityMessage.Content
	}
	if len(raw.Messages) > 0 {
		return raw.Messages[0].Content
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coalesceTimestamp returns the first value that could plausibly carry a
// date: non-nil, non-empty string, non-zero number.
func coalesceTimestamp(values ...any) any {
	for _, v := range values {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t != "" {
				return t
			}
		case float64:
			if t != 0 {
				return t
			}
		default:
			return v
		}
	}
	return nil
}
