package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewSchemaError("identifier column missing"),
			want: "[SCHEMA] identifier column missing",
		},
		{
			name: "with cause",
			err:  NewParseError("unreadable input", errors.New("bad zip")),
			want: "[PARSE] unreadable input: bad zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewDateFormatError("header unparseable", cause)

	assert.ErrorIs(t, err, cause)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrTypeParse, TypeOf(NewParseError("x", nil)))
	assert.Equal(t, ErrTypeSchema, TypeOf(fmt.Errorf("wrapped: %w", NewSchemaError("x"))))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.True(t, IsType(NewDateFormatError("x", nil), ErrTypeDateFormat))
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "parse failure maps to 422",
			err:        NewParseError("unrecognized format", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "PARSE_ERROR",
		},
		{
			name:       "schema failure maps to 422",
			err:        NewSchemaError("missing identifier column"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "SCHEMA_ERROR",
		},
		{
			name:       "date format failure maps to 422",
			err:        NewDateFormatError("bad headers", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "DATE_FORMAT_ERROR",
		},
		{
			name:       "plain error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "api error passes through",
			err:        ErrMissingFile,
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FILE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
		})
	}
}
