package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/auth"
	"github.com/belajarhosting/platform/internal/config"
	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService user.Service
	config      *config.Config
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	userService user.Service,
	cfg *config.Config,
	log *logger.Logger,
	val *validator.Validator,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		config:      cfg,
		logger:      log,
		validator:   val,
	}
}

func userDTO(u *user.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, tokens auth.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		HttpOnly: true,
		Secure:   h.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.config.Auth.AccessTokenExpiry.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		HttpOnly: true,
		Secure:   h.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.config.Auth.RefreshTokenExpiry.Seconds()),
	})
}

// Register handles user registration
// @Summary User registration
// @Description Register a new account; an OTP code is issued for verification
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserDTO "User registered, pending verification"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 409 {object} utils.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	newUser, err := h.userService.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to register user")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"user_id": newUser.ID,
		"email":   newUser.Email,
	}).Info("User registered")

	utils.WriteSuccessWithMessage(w, http.StatusCreated,
		"Registered. Check your email for the verification code.", userDTO(newUser))
}

// VerifyOTP confirms a registration with the emailed code
// @Summary Verify OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Invalid or expired code"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.userService.VerifyOTP(r.Context(), req.Email, req.Code); err != nil {
		utils.WriteAppError(w, err, "Failed to verify code")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Account verified", nil)
}

// ResendOTP issues a fresh verification code
// @Summary Resend OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResendOTPRequest true "Email"
// @Success 200 {object} utils.SuccessResponse
// @Router /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.userService.ResendOTP(r.Context(), req.Email); err != nil {
		utils.WriteAppError(w, err, "Failed to resend code")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Verification code sent", nil)
}

// Login handles user login
// @Summary User login
// @Description Authenticate a verified user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Successfully authenticated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure 403 {object} utils.ErrorResponse "Account not verified"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, auth.ScopeUser)
}

// AdminLogin handles back-office login. Tokens minted here carry the admin
// scope and only pass the admin route group.
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Successfully authenticated"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure 403 {object} utils.ErrorResponse "Not an admin account"
// @Router /admin/auth/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, auth.ScopeAdmin)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, scope string) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	var (
		authenticated *user.User
		err           error
	)
	if scope == auth.ScopeAdmin {
		authenticated, err = h.userService.AuthenticateAdmin(r.Context(), req.Email, req.Password)
	} else {
		authenticated, err = h.userService.Authenticate(r.Context(), req.Email, req.Password)
	}
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"email": req.Email,
			"scope": scope,
		}).Warn("Authentication failed")
		utils.WriteAppError(w, err, "Authentication failed")
		return
	}

	tokens, err := auth.MintTokens(
		authenticated.ID,
		authenticated.Email,
		scope,
		h.config.Auth.JWTSecret,
		h.config.Auth.AccessTokenExpiry,
		h.config.Auth.RefreshTokenExpiry,
	)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate tokens")
		utils.WriteError(w, errors.Internal("Failed to generate tokens", err))
		return
	}

	h.setAuthCookies(w, tokens)

	h.logger.WithFields(map[string]interface{}{
		"user_id": authenticated.ID,
		"email":   authenticated.Email,
		"scope":   scope,
	}).Info("User logged in")

	utils.WriteSuccess(w, http.StatusOK, dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         userDTO(authenticated),
	})
}

// Logout clears the auth cookies
// @Summary Logout
// @Tags Auth
// @Success 200 {object} utils.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			HttpOnly: true,
			Secure:   h.config.Server.Environment == "production",
			SameSite: http.SameSiteStrictMode,
			Path:     "/",
			MaxAge:   -1,
		})
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the current user's information
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserDTO "User information"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	u, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get user")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, userDTO(u))
}

// Config exposes the public auth configuration the frontend needs
// @Summary Auth configuration
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/config [get]
func (h *AuthHandler) Config(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"google_client_id": h.config.Auth.GoogleClientID,
	})
}
