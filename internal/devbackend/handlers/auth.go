package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/paclead/internal/devbackend/storage"
	"github.com/iudanet/paclead/internal/validation"
)

// TokenIssuer выпускает access token
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// registerRequest тело POST /auth/register
type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	AITone      string `json:"ai_tone"`
}

// loginRequest тело POST /auth/login
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse ответ на вход
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
}

// updateMeRequest тело PUT /auth/me, отсутствующие поля не меняются
type updateMeRequest struct {
	FullName    *string `json:"full_name"`
	CompanyName *string `json:"company_name"`
	AITone      *string `json:"ai_tone"`
}

// userResponse пользователь в ответах backend
type userResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name"`
	AITone      string    `json:"ai_tone"`
	ID          int64     `json:"id"`
}

func newUserResponse(u *storage.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		CompanyName: u.CompanyName,
		AITone:      u.AITone,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthHandler обрабатывает регистрацию, вход и профиль
type AuthHandler struct {
	users      storage.UserStorage
	tokens     TokenIssuer
	logger     *slog.Logger
	bcryptCost int
}

// NewAuthHandler создает AuthHandler.
// bcryptCost 0 означает bcrypt.DefaultCost.
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens TokenIssuer, bcryptCost int) *AuthHandler {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		users:      users,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register обрабатывает POST /auth/register.
// Токен в ответе не выдается, для него нужен отдельный вход.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, DetailInvalidJSON, http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if errs := validateCredentials(req.Email, req.Password); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to hash password")
		return
	}

	user := &storage.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		AITone:       req.AITone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			writeDetail(w, DetailEmailTaken, http.StatusBadRequest)
			return
		}
		internalError(w, r, h.logger, err, "failed to create user")
		return
	}

	h.logger.InfoContext(r.Context(), "user registered", slog.Int64("user_id", user.ID))
	writeJSON(w, newUserResponse(user), http.StatusCreated)
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, DetailInvalidJSON, http.StatusBadRequest)
		return
	}

	if errs := validateCredentials(req.Email, req.Password); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeDetail(w, DetailBadCredentials, http.StatusUnauthorized)
			return
		}
		internalError(w, r, h.logger, err, "failed to get user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeDetail(w, DetailBadCredentials, http.StatusUnauthorized)
		return
	}

	accessToken, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to issue token")
		return
	}

	writeJSON(w, loginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, http.StatusOK)
}

// Me обрабатывает GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, newUserResponse(user), http.StatusOK)
}

// UpdateMe обрабатывает PUT /auth/me
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, DetailInvalidJSON, http.StatusBadRequest)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.AITone != nil {
		user.AITone = *req.AITone
	}

	if err := h.users.UpdateProfile(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeDetail(w, DetailUserNotFound, http.StatusNotFound)
			return
		}
		internalError(w, r, h.logger, err, "failed to update user")
		return
	}

	writeJSON(w, newUserResponse(user), http.StatusOK)
}

// currentUser загружает пользователя из токена запроса
func (h *AuthHandler) currentUser(w http.ResponseWriter, r *http.Request) (*storage.User, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, DetailNotAuthenticated, http.StatusUnauthorized)
		return nil, false
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeDetail(w, DetailUserNotFound, http.StatusNotFound)
			return nil, false
		}
		internalError(w, r, h.logger, err, "failed to get user")
		return nil, false
	}

	return user, true
}

func validateCredentials(email, password string) []fieldError {
	var errs []fieldError
	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, missingField("email"))
	case validation.ValidateEmail(email) != nil:
		errs = append(errs, invalidField("body", "email", "value is not a valid email address"))
	}
	if validation.ValidatePassword(password) != nil {
		errs = append(errs, missingField("password"))
	}
	return errs
}
