package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultEndpoint = "https://api.line.me"

// Client is a minimal LINE Messaging API client covering the two send
// operations this service needs: a reply-token-bound text reply and a flex
// message push to a channel.
type Client struct {
	channelAccessToken string
	endpoint           string
	httpClient         *http.Client
}

func NewClient(channelAccessToken string) *Client {
	return &Client{
		channelAccessToken: channelAccessToken,
		endpoint:           defaultEndpoint,
		httpClient:         &http.Client{Timeout: 10 * time.Second},
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type flexMessagePayload struct {
	Type     string `json:"type"`
	AltText  string `json:"altText"`
	Contents Bubble `json:"contents"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type pushRequest struct {
	To       string               `json:"to"`
	Messages []flexMessagePayload `json:"messages"`
}

// ReplyText sends a text message bound to a one-time reply token.
func (c *Client) ReplyText(ctx context.Context, replyToken string, text string) error {
	body := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	}
	return c.post(ctx, "/v2/bot/message/reply", body, nil)
}

// PushFlex pushes a flex message directly to a user, group, or room.
func (c *Client) PushFlex(ctx context.Context, to string, message FlexMessage) error {
	body := pushRequest{
		To:       to,
		Messages: []flexMessagePayload{{Type: "flex", AltText: message.AltText, Contents: message.Contents}},
	}
	// The push endpoint accepts an idempotency key so the platform can
	// dedupe a resent request.
	headers := map[string]string{"X-Line-Retry-Key": uuid.NewString()}
	return c.post(ctx, "/v2/bot/message/push", body, headers)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, headers map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelAccessToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("line api %s returned status %d: %s", path, resp.StatusCode, string(respBody))
	}

	return nil
}
