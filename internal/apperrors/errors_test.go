package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidArgument, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrAuth, http.StatusUnauthorized},
		{ErrUpstream, http.StatusBadGateway},
		{ErrStorage, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err))
	}
}

func TestStatusCodeSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))

	err = fmt.Errorf("outer: %w", fmt.Errorf("%w: status 503", ErrUpstream))
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}
