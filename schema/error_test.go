package schema

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	var testCases = []struct {
		description string
		err         *Error
		expect      string
	}{
		{description: "with message", err: NewError(http.StatusUnauthorized, "jwt expired"), expect: "401 Unauthorized: jwt expired"},
		{description: "status only", err: NewError(http.StatusNotFound, ""), expect: "404 Not Found"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.err.Error(), testCase.description)
	}
}

func TestError_As(t *testing.T) {
	err := fmt.Errorf("list tasks: %w", NewError(http.StatusUnauthorized, "expired"))
	var apiErr *Error
	assert.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.Unauthorized())
}

func TestEnvelope_Decode(t *testing.T) {
	envelope, err := NewEnvelope(http.StatusOK, "ok", &TokenPair{AccessToken: "A1", RefreshToken: "R1"})
	assert.NoError(t, err)
	assert.True(t, envelope.Success)

	var pair TokenPair
	assert.NoError(t, envelope.Decode(&pair))
	assert.Equal(t, "A1", pair.AccessToken)
	assert.Equal(t, "R1", pair.RefreshToken)

	empty := &Envelope{Data: []byte("null")}
	assert.NoError(t, empty.Decode(&pair))
	assert.Equal(t, "A1", pair.AccessToken)
}

func TestTaskQuery_Init(t *testing.T) {
	query := &TaskQuery{Search: "milk"}
	query.Init()
	assert.Equal(t, SortByCreatedAt, query.Sort)
	assert.Equal(t, OrderDesc, query.Order)

	query = &TaskQuery{Sort: SortByTitle, Order: OrderAsc}
	query.Init()
	assert.Equal(t, SortByTitle, query.Sort)
	assert.Equal(t, OrderAsc, query.Order)
}
