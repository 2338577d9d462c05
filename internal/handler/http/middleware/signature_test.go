package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-channel-secret"

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestLineSignature_ValidSignaturePassesBodyThrough(t *testing.T) {
	body := []byte(`{"events":[]}`)

	var seenBody []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		seenBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", sign(testSecret, body))
	rec := httptest.NewRecorder()

	LineSignature(testSecret)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, seenBody, "the raw body must be re-attached for the handler")
}

func TestLineSignature_InvalidSignatureRejected(t *testing.T) {
	body := []byte(`{"events":[]}`)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an invalid signature")
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", sign("wrong-secret", body))
	rec := httptest.NewRecorder()

	LineSignature(testSecret)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLineSignature_MissingSignatureRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a signature")
	})

	LineSignature(testSecret)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	body := []byte(`{"events":[]}`)
	signature := sign(testSecret, body)

	assert.True(t, VerifySignature(testSecret, body, signature))
	assert.False(t, VerifySignature(testSecret, []byte(`{"events":[{}]}`), signature))
	assert.False(t, VerifySignature(testSecret, body, "not base64!!"))
}
