package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"scams/shared/failure"
	"scams/transport/http/response"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"room_id": 3})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"room_id":3}}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"conflict", failure.Conflict("time slot 10:00 already booked for this room"), http.StatusConflict, `{"error":"time slot 10:00 already booked for this room"}`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

func TestSessionCookie(t *testing.T) {
	session := response.SessionCookie{Name: "access_token", Secure: true}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	recorder := httptest.NewRecorder()
	session.Set(recorder, "token", expiresAt)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.True(t, expiresAt.Equal(cookies[0].Expires))

	recorder = httptest.NewRecorder()
	session.Clear(recorder)

	cookies = recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
