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

type SignupHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles POST /api/auth/signup. It accepts a JSON body with
// username, email, password and confirmPassword and creates the account with
// the default role. Validation failures map to 400, uniqueness conflicts to
// 409, everything else to 500.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
			Error: "Request body must be valid JSON",
		})
		return
	}

	user, err := h.AccountService.Signup(ctx, service.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error: "All fields are required",
			})
		case errors.Is(err, service.ErrPasswordMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error: "Passwords do not match",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, accountsdk.ErrorResponse{
				Error: "Email already exists",
			})
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteJSON(w, http.StatusConflict, accountsdk.ErrorResponse{
				Error: "Username already exists",
			})
		default:
			log.Error("failed to create user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error: "Failed to create user",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.SignupResponse{
		Message: "User created successfully",
		User: accountsdk.UserDetails{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}
