package mock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/taskmgr/schema"
)

func postJSON(t *testing.T, URL string, body interface{}) (*http.Response, *schema.Envelope) {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(URL, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	envelope := &schema.Envelope{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(envelope))
	return resp, envelope
}

func TestService_RefreshRotation(t *testing.T) {
	service, server := NewServer()
	defer server.Close()
	user, err := service.AddUser("ann@example.com", "Ann", "secret", false)
	require.NoError(t, err)
	pair, err := service.IssueTokens(user.ID)
	require.NoError(t, err)

	resp, envelope := postJSON(t, server.URL+schema.PathRefreshToken, &schema.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	rotated := &schema.TokenPair{}
	require.NoError(t, envelope.Decode(rotated))
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	resp, envelope = postJSON(t, server.URL+schema.PathRefreshToken, &schema.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, 2, service.RefreshCalls())
}

func TestService_Authenticate(t *testing.T) {
	service, server := NewServer()
	defer server.Close()
	user, err := service.AddUser("ann@example.com", "Ann", "secret", false)
	require.NoError(t, err)
	pair, err := service.IssueTokens(user.ID)
	require.NoError(t, err)

	var testCases = []struct {
		description string
		header      string
		expire      bool
		expect      int
	}{
		{description: "missing header", header: "", expect: http.StatusUnauthorized},
		{description: "refresh token as access", header: "Bearer " + pair.RefreshToken, expect: http.StatusUnauthorized},
		{description: "valid access", header: "Bearer " + pair.AccessToken, expect: http.StatusOK},
		{description: "expired access", header: "Bearer " + pair.AccessToken, expire: true, expect: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		if tc.expire {
			service.ExpireAccessTokens()
		}
		req, _ := http.NewRequest(http.MethodGet, server.URL+schema.PathCurrentUser, nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err, tc.description)
		_ = resp.Body.Close()
		assert.Equal(t, tc.expect, resp.StatusCode, tc.description)
	}
}

func TestService_AddUser(t *testing.T) {
	service := New()
	_, err := service.AddUser("Ann@example.com", "Ann", "secret", false)
	require.NoError(t, err)
	_, err = service.AddUser("ann@example.com", "Ann", "secret", false)
	assert.ErrorIs(t, err, errEmailTaken)
}
