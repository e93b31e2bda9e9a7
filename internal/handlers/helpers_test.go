package handlers

import (
	"encoding/json"
	"testing"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRawText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"12.50"`, want: "12.50"},
		{raw: `12.50`, want: "12.50"},
		{raw: ` 7 `, want: "7"},
		{raw: `null`, want: ""},
		{raw: ``, want: ""},
		{raw: `"cheap"`, want: "cheap"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rawText(json.RawMessage(tt.raw)), "raw %q", tt.raw)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: `3`, want: 3},
		{raw: `-2`, want: -2},
		{raw: `2.5`, wantErr: true},
		{raw: `"2"`, wantErr: true},
		{raw: `1e2`, wantErr: true},
		{raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseQuantity(json.RawMessage(tt.raw))
		if tt.wantErr {
			assert.ErrorIs(t, err, models.ErrValidation, "raw %q", tt.raw)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePathIndex(t *testing.T) {
	got, err := parsePathIndex("-1", "position")
	assert.NoError(t, err, "range is checked by the service, not here")
	assert.Equal(t, -1, got)

	got, err = parsePathIndex("4", "position")
	assert.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = parsePathIndex("first", "position")
	assert.ErrorIs(t, err, models.ErrValidation)
}
