package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/taskmgr/schema"
)

func TestClient_Refresh(t *testing.T) {
	var testCases = []struct {
		description   string
		status        int
		body          string
		expectAccess  string
		expectRefresh string
		expectStatus  int
		expectErr     error
	}{
		{
			description:   "rotated pair",
			status:        http.StatusOK,
			body:          `{"success":true,"data":{"accessToken":"A2","refreshToken":"R2"}}`,
			expectAccess:  "A2",
			expectRefresh: "R2",
		},
		{
			description:   "refresh token omitted",
			status:        http.StatusOK,
			body:          `{"success":true,"data":{"accessToken":"A2"}}`,
			expectAccess:  "A2",
			expectRefresh: "R1",
		},
		{
			description:  "rejected refresh token",
			status:       http.StatusUnauthorized,
			body:         `{"success":false,"message":"refresh token expired"}`,
			expectStatus: http.StatusUnauthorized,
		},
		{
			description:  "non json error body",
			status:       http.StatusBadGateway,
			body:         `bad gateway`,
			expectStatus: http.StatusBadGateway,
		},
		{
			description: "empty access token",
			status:      http.StatusOK,
			body:        `{"success":true,"data":{}}`,
			expectErr:   ErrEmptyAccessToken,
		},
	}

	for _, tc := range testCases {
		var received schema.RefreshRequest
		var receivedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))

		token, err := New(server.URL).Refresh(context.Background(), "R1")
		server.Close()

		assert.Equal(t, schema.PathRefreshToken, receivedPath, tc.description)
		assert.Equal(t, "R1", received.RefreshToken, tc.description)
		if tc.expectStatus != 0 {
			var statusErr *schema.Error
			require.True(t, errors.As(err, &statusErr), tc.description)
			assert.Equal(t, tc.expectStatus, statusErr.StatusCode, tc.description)
			continue
		}
		if tc.expectErr != nil {
			assert.ErrorIs(t, err, tc.expectErr, tc.description)
			continue
		}
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.expectAccess, token.AccessToken, tc.description)
		assert.Equal(t, tc.expectRefresh, token.RefreshToken, tc.description)
		assert.Equal(t, "Bearer", token.TokenType, tc.description)
	}
}

func TestClient_RefreshTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	URL := server.URL
	server.Close()
	_, err := New(URL).Refresh(context.Background(), "R1")
	require.Error(t, err)
	var statusErr *schema.Error
	assert.False(t, errors.As(err, &statusErr))
}
