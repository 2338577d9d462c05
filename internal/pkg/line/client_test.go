package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path    string
	headers http.Header
	body    []byte
}

func newTestClient(t *testing.T, status int) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.headers = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured.body = body
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.endpoint = server.URL
	return client, captured
}

func TestReplyText(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK)

	err := client.ReplyText(context.Background(), "reply-token-1", "打卡成功")
	require.NoError(t, err)

	assert.Equal(t, "/v2/bot/message/reply", captured.path)
	assert.Equal(t, "Bearer test-token", captured.headers.Get("Authorization"))
	assert.Equal(t, "application/json", captured.headers.Get("Content-Type"))

	var payload struct {
		ReplyToken string `json:"replyToken"`
		Messages   []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(captured.body, &payload))
	assert.Equal(t, "reply-token-1", payload.ReplyToken)
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, "text", payload.Messages[0].Type)
	assert.Equal(t, "打卡成功", payload.Messages[0].Text)
}

func TestPushFlex(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK)

	message := FlexMessage{
		AltText:  "預約確認 - 王小明",
		Contents: NewBubble("mega"),
	}
	err := client.PushFlex(context.Background(), "Cgroup123", message)
	require.NoError(t, err)

	assert.Equal(t, "/v2/bot/message/push", captured.path)
	assert.NotEmpty(t, captured.headers.Get("X-Line-Retry-Key"))

	var payload struct {
		To       string `json:"to"`
		Messages []struct {
			Type    string `json:"type"`
			AltText string `json:"altText"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(captured.body, &payload))
	assert.Equal(t, "Cgroup123", payload.To)
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, "flex", payload.Messages[0].Type)
	assert.Equal(t, "預約確認 - 王小明", payload.Messages[0].AltText)
}

func TestReplyText_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized)

	err := client.ReplyText(context.Background(), "reply-token-1", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestFlexComponentMarshaling(t *testing.T) {
	label := NewText("姓名")
	label.Color = "#aaaaaa"
	label.Flex = 2

	box := BaselineBox(label)
	box.Spacing = "sm"

	raw, err := json.Marshal(box)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "box",
		"layout": "baseline",
		"spacing": "sm",
		"contents": [
			{"type": "text", "text": "姓名", "color": "#aaaaaa", "flex": 2}
		]
	}`, string(raw))
}
