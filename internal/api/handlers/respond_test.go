package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondStoreError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondStoreError(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, CodeStoreError, body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestRespondJSON_OmitsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]int{"n": 1})

	assert.JSONEq(t, `{"success":true,"message":"OK","data":{"n":1}}`, rec.Body.String())
}

type decodeTarget struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"a","count":2}`, false},
		{"missing required", `{"count":2}`, true},
		{"unknown field", `{"name":"a","count":2,"extra":true}`, true},
		{"empty", ``, true},
		{"malformed", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v decodeTarget
			err := DecodeJSON(r, &v)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", d.Format("2006-01-02"))

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)

	_, err = ParseDate("28.02.2026")
	assert.Error(t, err)
}

func TestParseUUID_RejectsNil(t *testing.T) {
	_, err := ParseUUID("00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)
}
