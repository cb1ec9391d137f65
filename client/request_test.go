package client

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/taskmgr/client/auth/transport"
	"github.com/viant/taskmgr/schema"
)

func TestRequest_URI(t *testing.T) {
	var testCases = []struct {
		description string
		request     *Request
		expect      string
	}{
		{
			description: "plain path",
			request:     NewRequest(http.MethodGet, schema.PathCurrentUser),
			expect:      "/user/current-user",
		},
		{
			description: "path param",
			request:     NewRequest(http.MethodPut, schema.PathTask, WithParam("id", "a/b")),
			expect:      "/task/a%2Fb",
		},
		{
			description: "query skips empty values",
			request:     NewRequest(http.MethodGet, schema.PathTasks, WithQuery("search", "milk"), WithQuery("sort", ""), WithQuery("order", "desc")),
			expect:      "/task?order=desc&search=milk",
		},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.request.URI(), tc.description)
	}
}

func TestForm_Encode(t *testing.T) {
	form := &Form{
		Fields: map[string]string{"title": "report", "description": "q3"},
		Files:  map[string]*schema.File{"image": {Name: `chart "final".png`, ContentType: "image/png", Content: strings.NewReader("png-bytes")}},
	}
	body, contentType, err := NewRequest(http.MethodPost, schema.PathTasks, WithForm(form)).encode()
	require.NoError(t, err)
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	parsed, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"report"}, parsed.Value["title"])
	assert.Equal(t, []string{"q3"}, parsed.Value["description"])
	require.Len(t, parsed.File["image"], 1)
	assert.Equal(t, `chart "final".png`, parsed.File["image"][0].Filename)
	file, err := parsed.File["image"][0].Open()
	require.NoError(t, err)
	data, _ := io.ReadAll(file)
	assert.Equal(t, "png-bytes", string(data))
}

func TestClassify(t *testing.T) {
	var testCases = []struct {
		description string
		err         error
		expect      Failure
	}{
		{description: "nil", err: nil, expect: FailureNone},
		{description: "unauthorized", err: schema.NewError(http.StatusUnauthorized, ""), expect: FailureAuthorization},
		{description: "not found", err: fmt.Errorf("wrapped: %w", schema.NewError(http.StatusNotFound, "")), expect: FailureStatus},
		{
			description: "refresh through url error",
			err:         &url.Error{Op: "Get", URL: "http://localhost", Err: &transport.RefreshError{Err: errors.New("expired")}},
			expect:      FailureRefresh,
		},
		{description: "network", err: errors.New("connection refused"), expect: FailureTransport},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Classify(tc.err), tc.description)
	}
	assert.Equal(t, "refresh", FailureRefresh.String())
}
