package handler

import (
	"errors"
	"fmt"
	"testing"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapUsecaseError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: missing email", usecase.ErrInvalidInput), fiber.StatusBadRequest},
		{usecase.ErrEmailAlreadyRegistered, fiber.StatusConflict},
		{usecase.ErrEmailNotFound, fiber.StatusUnauthorized},
		{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{usecase.ErrNoJobSeekerSession, fiber.StatusUnauthorized},
		{usecase.ErrNoCompanySession, fiber.StatusUnauthorized},
		{usecase.ErrCandidateNotFound, fiber.StatusNotFound},
		{fmt.Errorf("save portal state: %w", errors.New("redis down")), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		var appErr *middleware.AppError
		require.ErrorAs(t, mapUsecaseError(tc.err), &appErr)
		assert.Equal(t, tc.want, appErr.StatusCode, tc.err.Error())
		assert.ErrorIs(t, appErr, tc.err)
	}
	assert.NoError(t, mapUsecaseError(nil))
}
