package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"conversationLogger/internal/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForErrors([]error{errs.ErrInvalidUserId, errs.ErrMissingMessage}))
	assert.Equal(t, http.StatusBadRequest, statusForErrors([]error{fmt.Errorf("wrapped: %w", errs.ErrInvalidLimit)}))
	assert.Equal(t, http.StatusInternalServerError, statusForErrors([]error{errors.New("database is locked")}))
	assert.Equal(t, http.StatusInternalServerError, statusForErrors([]error{errs.ErrInvalidUserId, errors.New("disk full")}))
}
