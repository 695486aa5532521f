package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentgear-backend/internal/service"
)

func TestRespondError(t *testing.T) {
	t.Run("Validation errors map to 400 with fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		verr := &service.ValidationError{Fields: []service.FieldError{
			{Field: "name", Message: "is required"},
			{Field: "phone", Message: "is required"},
		}}

		respondError(rec, verr)
		assert.Equal(t, 400, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Len(t, body.Fields, 2)
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, service.ErrNotFound)
		assert.Equal(t, 404, rec.Code)

		rec = httptest.NewRecorder()
		respondError(rec, sql.ErrNoRows)
		assert.Equal(t, 404, rec.Code)
	})

	t.Run("Conflicts map to 409 with the reason", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, &service.ConflictError{Reason: "dates are taken"})
		assert.Equal(t, 409, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "dates are taken", body.Message)
	})

	t.Run("Bad credentials map to 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, service.ErrInvalidCredentials)
		assert.Equal(t, 401, rec.Code)
	})

	t.Run("Anything else is a generic 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, errors.New("disk on fire"))
		assert.Equal(t, 500, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		// internals never leak to the client
		assert.NotContains(t, body.Message, "disk")
	})
}

func TestRespondSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	respondSuccess(rec, 201, map[string]int{"id": 5})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body successResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
