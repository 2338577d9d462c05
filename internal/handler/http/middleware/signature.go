package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"

	"github.com/flosclinic/attendance-bot/internal/handler/http/response"
)

// LineSignature verifies the X-Line-Signature header: base64 of the
// HMAC-SHA256 of the raw request body, keyed with the channel secret. The
// body is re-attached for downstream handlers.
func LineSignature(channelSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				response.BadRequest(w, "Failed to read request body", nil)
				return
			}
			r.Body.Close()

			signature := r.Header.Get("X-Line-Signature")
			if !VerifySignature(channelSecret, body, signature) {
				response.Unauthorized(w, "Invalid signature")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

func VerifySignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}
