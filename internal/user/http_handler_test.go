package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]string{"name": "Ana", "email": "ana@example.com", "senha": "s3cret"},
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "nome alias",
			body: map[string]string{"nome": "Ana", "email": "ana@example.com", "senha": "s3cret"},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Do(func(_ any, u *User) { assert.Equal(t, "Ana", u.Name) }).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate email",
			body: map[string]string{"name": "Ana", "email": "ana@example.com", "senha": "s3cret"},
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing password",
			body:           map[string]string{"name": "Ana", "email": "ana@example.com"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password over 72 bytes",
			body:           map[string]string{"name": "Ana", "email": "ana@example.com", "senha": strings.Repeat("é", 72)},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           "not-an-object",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/v1/user/create", jsonBody(t, tt.body))

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestHTTPHandler_Login(t *testing.T) {
	handler := NewHTTPHandler(NewService(NewMemoryRepo()))

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/v1/user/create",
		jsonBody(t, map[string]string{"name": "Ana", "email": "ana@example.com", "senha": "s3cret"})))
	require.Equal(t, http.StatusOK, w.Code)

	login := func(email, password string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/user/login",
			jsonBody(t, map[string]string{"email": email, "senha": password}))
		handler.Login(w, r)
		return w
	}

	t.Run("success", func(t *testing.T) {
		w := login("ana@example.com", "s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("failures are indistinguishable", func(t *testing.T) {
		wrongPassword := login("ana@example.com", "nope")
		unknownEmail := login("bob@example.com", "s3cret")

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
		assert.Contains(t, wrongPassword.Body.String(), "AUTHENTICATION_FAILED")
	})
}

func TestHTTPHandler_Create_PasswordByteLimit(t *testing.T) {
	handler := NewHTTPHandler(NewService(NewMemoryRepo()))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/user/create",
		jsonBody(t, map[string]string{"name": "Ana", "email": "ana@example.com", "senha": strings.Repeat("é", 72)}))
	handler.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "senha must be at most 72 bytes")

	// 72 ASCII bytes is still accepted
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/v1/user/create",
		jsonBody(t, map[string]string{"name": "Ana", "email": "ana@example.com", "senha": strings.Repeat("a", 72)}))
	handler.Create(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
