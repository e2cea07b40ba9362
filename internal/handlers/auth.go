// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"toolindex/internal/apierr"
	"toolindex/internal/middleware"
	"toolindex/internal/session"
	"toolindex/internal/store"
)

// totpIssuer is the issuer name shown in authenticator apps.
const totpIssuer = "ToolIndex"

// Auth groups the authentication endpoints. Login creates a session with
// 2FA incomplete; mutations stay locked until the TOTP code is verified.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{sessions: sessions, userStore: userStore}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status      string `json:"status"`
	Needs2FA    bool   `json:"needs_2fa_setup"`
	DisplayName string `json:"display_name"`
}

// Login handles POST /api/v1/auth/login. On success the session cookie is
// set with 2FA incomplete; the response tells the client whether the user
// still needs to run 2FA setup or only verification.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		writeError(w, apierr.Internal(err))
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, apierr.Unauthorized("invalid email or password"))
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		TwoFADone:   false,
	})
	if err != nil {
		writeError(w, apierr.Internal(err))
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Status:      "success",
		Needs2FA:    user.Needs2FASetup(),
		DisplayName: user.DisplayName,
	})
}

type twoFASetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code_png"`
}

// TwoFASetup handles GET /api/v1/auth/2fa/setup. It generates a fresh
// TOTP secret for the logged-in user and returns it together with a
// base64-encoded QR code PNG for authenticator apps.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, apierr.Unauthorized("authentication required"))
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		writeError(w, apierr.Internal(err))
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		writeError(w, apierr.Internal(err))
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		writeError(w, apierr.Internal(err))
		return
	}

	writeJSON(w, http.StatusOK, twoFASetupResponse{
		Secret: key.Secret(),
		QRCode: base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify handles POST /api/v1/auth/2fa/verify. A valid TOTP code
// enables 2FA on first use and marks the session fully authenticated.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, apierr.Unauthorized("authentication required"))
		return
	}

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		writeError(w, apierr.Internal(err))
		return
	}
	if user == nil || user.TOTPSecret == nil {
		writeError(w, apierr.Validation("two-factor setup has not been started"))
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, apierr.Unauthorized("invalid code"))
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			writeError(w, apierr.Internal(err))
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		writeError(w, apierr.Internal(err))
		return
	}

	writeSuccess(w, http.StatusOK, "Two-factor authentication verified", nil)
}

// Logout handles POST /api/v1/auth/logout.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	writeSuccess(w, http.StatusOK, "Logged out", nil)
}
