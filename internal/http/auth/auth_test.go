package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wallet/internal/http/auth"
)

var secret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	token, err := auth.Issue(secret, "owner", time.Now(), time.Hour)
	require.NoError(t, err)

	claims, err := auth.Verify(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)

	_, err = auth.Verify([]byte("other"), token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	token, err := auth.Issue(secret, "owner", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = auth.Verify(secret, token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	valid, err := auth.Issue(secret, "owner", time.Now(), time.Hour)
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name   string
		secret []byte
		header string
		want   int
	}{
		{name: "Disabled", secret: nil, want: http.StatusTeapot},
		{name: "Missing", secret: secret, want: http.StatusUnauthorized},
		{name: "Malformed", secret: secret, header: "Token abc", want: http.StatusUnauthorized},
		{name: "Invalid", secret: secret, header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "Valid", secret: secret, header: "Bearer " + valid, want: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(tt.secret)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
