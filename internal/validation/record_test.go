package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecordType(t *testing.T) {
	tests := []struct {
		name       string
		recordType string
		wantErr    bool
		errMsg     string
	}{
		{name: "valid - user", recordType: "user"},
		{name: "valid - camel case", recordType: "systemSecret"},
		{name: "valid - with digits", recordType: "type2"},
		{name: "invalid - empty", recordType: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "invalid - starts with digit", recordType: "2type", wantErr: true, errMsg: "must start with a letter"},
		{name: "invalid - with dash", recordType: "app-token", wantErr: true, errMsg: "must start with a letter"},
		{name: "invalid - too long", recordType: strings.Repeat("a", 65), wantErr: true, errMsg: "must not exceed 64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordType(tt.recordType)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRecordID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "valid - simple", id: "someUserId"},
		{name: "valid - uuid", id: "0b7e3c4a-9a55-4a4e-9f0f-1c2d3e4f5a6b"},
		{name: "valid - with colon and dot", id: "user:admin.1"},
		{name: "valid - max length", id: strings.Repeat("a", 255)},
		{name: "invalid - empty", id: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "invalid - space", id: "some id", wantErr: true, errMsg: "can only contain"},
		{name: "invalid - slash", id: "a/b", wantErr: true, errMsg: "can only contain"},
		{name: "invalid - too long", id: strings.Repeat("a", 256), wantErr: true, errMsg: "must not exceed 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordID(tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
		errMsg  string
	}{
		{name: "valid - exactly 8 chars", secret: "12345678"},
		{name: "valid - long", secret: "correct horse battery staple"},
		{name: "invalid - empty", secret: "", wantErr: true, errMsg: "secret cannot be empty"},
		{name: "invalid - too short (7 chars)", secret: "1234567", wantErr: true, errMsg: "must be at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSecret(tt.secret)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
