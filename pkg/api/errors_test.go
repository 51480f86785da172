package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bidiq/bidiq/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", services.NewValidationError("ufs", "obrigatório"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), services.ErrNotFound), http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"quota exceeded", services.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"trial expired", services.ErrTrialExpired, http.StatusForbidden},
		{"rate limited", services.ErrRateLimited, http.StatusTooManyRequests},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}
