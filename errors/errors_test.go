package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: expired", ErrInvalidToken), http.StatusUnauthorized},
		{ErrMissingToken, http.StatusUnauthorized},
		{ErrInvalidPassword, http.StatusBadRequest},
		{fmt.Errorf("%w: username", ErrInvalidRequest), http.StatusBadRequest},
		{ErrContentTooLong, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusConflict},
		{ErrRoomNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrRelayUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, MapToHTTPStatus(tt.err), "%v", tt.err)
	}
}
