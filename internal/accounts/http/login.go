package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/embercast/accountd/internal/accounts/service"
	"github.com/embercast/accountd/pkg/accountsdk"
	"github.com/embercast/accountd/pkg/httpx"
	"github.com/embercast/accountd/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles POST /api/auth/login. The identifier field is a username
// or an email; anything containing "@" is looked up as an email. Unknown
// identifiers and wrong passwords both answer 401 with the same body.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
			Error: "Request body must be valid JSON",
		})
		return
	}

	result, err := h.AccountService.Login(ctx, service.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error: "Email/Username and password are required",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, accountsdk.ErrorResponse{
				Error: "Invalid credentials",
			})
		default:
			log.Error("failed to login", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error: "Failed to login",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User: accountsdk.UserDetails{
			Username: result.User.Username,
			Email:    result.User.Email,
			Role:     result.User.Role,
		},
	})
}
