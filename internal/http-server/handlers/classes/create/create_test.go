package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tutors-service/api"
	"tutors-service/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClassRegistrar struct {
	mock.Mock
}

func (m *MockClassRegistrar) RegisterClass(ctx context.Context, req *api.RegisterClassRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(99)}))
}

func validBody() *api.RegisterClassRequest {
	return &api.RegisterClassRequest{
		Name:     "Ada Lovelace",
		Avatar:   "https://example.com/ada.png",
		Whatsapp: "+5511999990000",
		Bio:      "Analytical engines and calculus.",
		Subject:  "Math",
		Cost:     80,
		Schedule: []api.ScheduleItem{
			{WeekDay: 3, From: "14:00", To: "15:00"},
		},
	}
}

func post(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	return rec
}

func TestCreate_OK(t *testing.T) {
	registrar := new(MockClassRegistrar)
	registrar.On("RegisterClass", mock.Anything, mock.AnythingOfType("*api.RegisterClassRequest")).Return(nil)

	rec := post(t, New(discardLogger(), registrar), validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
	registrar.AssertExpectations(t)
}

func TestCreate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*api.RegisterClassRequest)
	}{
		{"missing name", func(r *api.RegisterClassRequest) { r.Name = "" }},
		{"missing whatsapp", func(r *api.RegisterClassRequest) { r.Whatsapp = "" }},
		{"missing subject", func(r *api.RegisterClassRequest) { r.Subject = "" }},
		{"empty schedule", func(r *api.RegisterClassRequest) { r.Schedule = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registrar := new(MockClassRegistrar)

			body := validBody()
			tc.mutate(body)

			rec := post(t, New(discardLogger(), registrar), body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			registrar.AssertNotCalled(t, "RegisterClass", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	registrar := new(MockClassRegistrar)

	req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	New(discardLogger(), registrar).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	registrar.AssertNotCalled(t, "RegisterClass", mock.Anything, mock.Anything)
}

func TestCreate_RegistrationFailure(t *testing.T) {
	registrar := new(MockClassRegistrar)
	registrar.On("RegisterClass", mock.Anything, mock.Anything).
		Return(errors.New("pq: foreign key violation"))

	rec := post(t, New(discardLogger(), registrar), validBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), response.MsgRegistrationFailed)
	assert.NotContains(t, rec.Body.String(), "pq:", "internal cause must not leak")
}

func TestCreate_Locked(t *testing.T) {
	registrar := new(MockClassRegistrar)
	registrar.On("RegisterClass", mock.Anything, mock.Anything).Return(response.ErrLocked)

	rec := post(t, New(discardLogger(), registrar), validBody())

	assert.Equal(t, http.StatusLocked, rec.Code)
}
