package attendance

// IncomingMessage is a text message received through the webhook, reduced to
// what the dispatcher needs. ChannelID is empty when the message came from a
// one-to-one chat instead of a group or room.
type IncomingMessage struct {
	ReplyToken string
	LineUserID string
	ChannelID  string
	Text       string
}
