package domain

import (
	"errors"
	"time"
)

const (
	AuthEventSignedIn  = "SIGNED_IN"
	AuthEventSignedOut = "SIGNED_OUT"

	HeaderClientID = "X-Client-ID"
)

var (
	MessageSuccessSignIn        = "signed in successfully"
	MessageSuccessSignUp        = "account created successfully"
	MessageSuccessSignOut       = "signed out successfully"
	MessageSuccessGetSession    = "session retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"

	MessageFailedAuthenticate  = "failed to authenticate"
	MessageFailedSignOut       = "failed to sign out"
	MessageFailedGetSession    = "failed to retrieve session"
	MessageFailedVerifyEmail   = "failed to verify email"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedGetProfile    = "failed to retrieve profile"

	ErrInvalidCredentials     = errors.New("invalid login credentials")
	ErrEmailAlreadyRegistered = errors.New("user already registered")
	ErrSessionNotFound        = errors.New("session not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmptyProfileUpdate     = errors.New("no profile fields to update")
	ErrInvalidRedirect        = errors.New("redirect must stay on the site")
)

type (
	User struct {
		ID               string            `json:"id"`
		Email            string            `json:"email"`
		Metadata         map[string]string `json:"user_metadata"`
		EmailConfirmedAt *time.Time        `json:"email_confirmed_at,omitempty"`
		CreatedAt        time.Time         `json:"created_at"`
	}

	Session struct {
		AccessToken string    `json:"access_token"`
		TokenType   string    `json:"token_type"`
		ExpiresAt   time.Time `json:"expires_at"`
		User        User      `json:"user"`
	}

	// AuthEvent is delivered to subscribers whenever a client's session
	// changes.
	AuthEvent struct {
		Type     string   `json:"type"`
		ClientID string   `json:"client_id"`
		Session  *Session `json:"session,omitempty"`
	}

	SignInRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		ClientID string `json:"-"`
	}

	SignUpRequest struct {
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required,min=6"`
		FullName   string `json:"full_name" validate:"required"`
		Phone      string `json:"phone"`
		CPF        string `json:"cpf"`
		RedirectTo string `json:"redirect_to" validate:"omitempty,url"`
		ClientID   string `json:"-"`
	}

	SignUpResponse struct {
		User    User     `json:"user"`
		Session *Session `json:"session"`
	}

	// UpdateProfileRequest patches only the fields that are set.
	UpdateProfileRequest struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		CPF      *string `json:"cpf"`
	}

	Profile struct {
		ID       string `json:"id"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		CPF      string `json:"cpf"`
	}
)
