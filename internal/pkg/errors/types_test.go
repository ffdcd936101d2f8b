package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		in   ErrorType
		want string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(-1), "ErrorType(-1)"},
		{ErrorType(999), "ErrorType(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}
