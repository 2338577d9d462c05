package line

// Webhook payload types for the LINE Messaging API. Only the fields this
// service reads are declared.

const (
	EventTypeMessage  = "message"
	EventTypeFollow   = "follow"
	EventTypeUnfollow = "unfollow"

	MessageTypeText = "text"

	SourceTypeUser  = "user"
	SourceTypeGroup = "group"
	SourceTypeRoom  = "room"
)

type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type       string   `json:"type"`
	ReplyToken string   `json:"replyToken"`
	Source     Source   `json:"source"`
	Message    *Message `json:"message,omitempty"`
	Timestamp  int64    `json:"timestamp"`
}

type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// ChannelID returns the group or room identifier the event originated from,
// or "" for a one-to-one chat.
func (s Source) ChannelID() string {
	switch s.Type {
	case SourceTypeGroup:
		return s.GroupID
	case SourceTypeRoom:
		return s.RoomID
	}
	return ""
}

type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
