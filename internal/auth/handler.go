package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type authService interface {
	Register(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, *User, error)
	Logout(ctx context.Context, token string) (bool, error)
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=auth_test

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, ok := credentialsFromRequest(w, r)
	if !ok {
		return
	}

	user, err := handler.service.Register(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, "error, email already registered", http.StatusConflict)
			span.SetStatus(codes.Error, "email-taken")
			return
		}
		log.Errorf("register user failed: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	token, user, err := handler.service.Login(ctx, creds, time.Now())
	if err != nil {
		log.Errorf("login after register failed: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	authRespJson, err := json.Marshal(AuthResponse{
		Token: token,
		User:  user,
	})
	if err != nil {
		log.Errorf("failed to marshal register response: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, authRespJson, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, ok := credentialsFromRequest(w, r)
	if !ok {
		return
	}

	token, user, err := handler.service.Login(ctx, creds, time.Now())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed login attempt for: %s", creds.Email)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			span.SetStatus(codes.Error, "wrong-credentials")
			return
		}
		log.Errorf("login failed for %s: %s", creds.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	authRespJson, err := json.Marshal(AuthResponse{
		Token: token,
		User:  user,
	})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, authRespJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, token)
	if err != nil {
		log.Tracef("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

// TokenFromRequest reads the session token from the Authorization header
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func credentialsFromRequest(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Credentials{}, false
	}

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Errorf("auth request, unmarshal json params: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return Credentials{}, false
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return Credentials{}, false
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return Credentials{}, false
	}

	return creds, true
}
