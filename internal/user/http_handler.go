package user

import (
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/httpx"
	"libraryapi/internal/platform/crypto"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	Name     string `json:"name"`
	Nome     string `json:"nome"`
	Email    string `json:"email" validate:"notblank,max=255"`
	Password string `json:"senha" validate:"notblank,maxbytes=72"`
}

type loginReq struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"senha" validate:"notblank"`
}

// Create handles POST /v1/user/create
// @Summary Register a new user
// @Tags users
// @Accept json
// @Param request body createReq true "Registration request"
// @Success 200
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/user/create [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		req.Name = req.Nome
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	if _, err := h.service.CreateUser(r.Context(), strings.TrimSpace(req.Name), req.Email, req.Password); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
			return
		}
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "senha", Message: "senha must be at most 72 bytes"},
			})
			return
		}
		httpx.InternalError(w, r, err, "create user")
		return
	}

	httpx.OK(w)
}

// Login handles POST /v1/user/login
// @Summary Check user credentials
// @Tags users
// @Accept json
// @Param request body loginReq true "Login request"
// @Success 200
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/user/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	if _, err := h.service.LoginUser(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "AUTHENTICATION_FAILED", "Invalid email or password", nil)
			return
		}
		httpx.InternalError(w, r, err, "login user")
		return
	}

	httpx.OK(w)
}
