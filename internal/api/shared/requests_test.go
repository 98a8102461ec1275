package shared

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"dataDescription": "sales", "objective": "trend"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"dataDescription": "sales",}`, // trailing comma
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "wrong type",
			requestBody: `{"dataDescription": 42}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target domain.RecommendationRequest
			err := DecodeJSON(req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "sales", target.DataDescription)
			assert.Equal(t, "trend", target.Objective)
		})
	}
}

// errorReader fails every read.
type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target struct{}
	err := DecodeJSON(req, &target)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

type selfValidating struct {
	valid bool
}

func (s *selfValidating) Validate() error {
	if !s.valid {
		return assert.AnError
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        interface{}
		wantFields []string
		wantErr    bool
	}{
		{
			name: "complete request",
			req:  &domain.RecommendationRequest{DataDescription: "sales", Objective: "trend"},
		},
		{
			name:       "missing objective",
			req:        &domain.RecommendationRequest{DataDescription: "sales"},
			wantFields: []string{"objective"},
			wantErr:    true,
		},
		{
			name:       "both missing",
			req:        &domain.RecommendationRequest{},
			wantFields: []string{"dataDescription", "objective"},
			wantErr:    true,
		},
		{
			name:    "custom validator fails",
			req:     &selfValidating{},
			wantErr: true,
		},
		{
			name: "custom validator passes",
			req:  &selfValidating{valid: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)

			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantFields, FailedFields(err))
		})
	}
}

func TestFailedFieldsNonValidationError(t *testing.T) {
	assert.Nil(t, FailedFields(assert.AnError))
	assert.Nil(t, FailedFields(nil))
}
