package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminEmail    string
	adminPassword string
	sessionSecret string
	secureCookies bool
}

func newAuthHandler(adminEmail, adminPassword, sessionSecret string, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login checks the supplied credentials against the configured admin
// account and sets a session cookie on success.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.adminEmail == "" || h.adminPassword == "" || h.sessionSecret == "" {
			h.logger.Error().Msg("admin credentials are not configured")
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.adminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) == 1
		if !emailOK || !passwordOK {
			h.logger.Warn().Str("email", req.Email).Msg("rejected login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := issueSessionToken(h.sessionSecret, h.adminEmail, time.Now())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessionDuration),
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"email":  h.adminEmail,
		})
	}
}

// logout clears the session cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
		})
	}
}
