package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/utils"
	"SmartCart-Backend/internal/utils/mailing"
	"SmartCart-Backend/pkg/jwt"
	"SmartCart-Backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeBearer       = "bearer"
	confirmationTTL       = 24 * time.Hour
	confirmationMailTitle = "Confirm your SmartCart account"
	verifyEmailPath       = "/api/v1/auth/verify"
)

type (
	AuthService interface {
		GetSession(ctx context.Context, accessToken string) (*domain.Session, error)
		SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error)
		SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.SignUpResponse, error)
		SignOut(ctx context.Context, accessToken string, clientID string) error
		VerifyEmail(ctx context.Context, token string) (string, error)
		GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
		Subscribe(ctx context.Context, clientID string, handler func(domain.AuthEvent)) (Subscription, error)
	}

	Config struct {
		AppURL           string
		SiteRedirectPath string
		SessionTTL       time.Duration
	}

	authService struct {
		userRepository user.UserRepository
		jwtService     jwt.JWTService
		sessions       SessionStore
		events         EventBus
		mailer         mailing.Mailer
		config         Config
	}
)

func NewAuthService(
	userRepository user.UserRepository,
	jwtService jwt.JWTService,
	sessions SessionStore,
	events EventBus,
	mailer mailing.Mailer,
	config Config,
) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtService:     jwtService,
		sessions:       sessions,
		events:         events,
		mailer:         mailer,
		config:         config,
	}
}

// GetSession accepts only tokens that are both validly signed and still
// present in the session store.
func (s *authService) GetSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	if _, err := s.jwtService.GetUserIDByToken(accessToken); err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx, accessToken)
}

func (s *authService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	req.Email = normalizeEmail(req.Email)
	if err := utils.Validate.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.AuthEvent{Type: domain.AuthEventSignedIn, ClientID: req.ClientID, Session: session})
	return session, nil
}

func (s *authService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.SignUpResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := utils.Validate.Struct(req); err != nil {
		return nil, err
	}
	redirectTo, err := s.resolveRedirect(req.RedirectTo)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entities.User{
		Email:    req.Email,
		Password: string(hashed),
		Metadata: map[string]string{"full_name": req.FullName},
	}
	if err := s.userRepository.CreateUserWithProfile(ctx, u, &entities.Profile{FullName: req.FullName}); err != nil {
		return nil, err
	}

	s.sendConfirmation(u, req.FullName, redirectTo)

	session, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.AuthEvent{Type: domain.AuthEventSignedIn, ClientID: req.ClientID, Session: session})

	return &domain.SignUpResponse{
		User:    toUserResponse(u),
		Session: session,
	}, nil
}

func (s *authService) SignOut(ctx context.Context, accessToken string, clientID string) error {
	if err := s.sessions.Delete(ctx, accessToken); err != nil {
		return err
	}
	s.publish(ctx, domain.AuthEvent{Type: domain.AuthEventSignedOut, ClientID: clientID})
	return nil
}

// VerifyEmail confirms the address carried by a confirmation token and
// returns where the user should be sent next. A second visit keeps the
// first confirmation time.
func (s *authService) VerifyEmail(ctx context.Context, token string) (string, error) {
	userID, redirectTo, err := s.jwtService.ValidateEmailConfirmationToken(token)
	if err != nil {
		return "", err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.EmailConfirmedAt == nil {
		if err := s.userRepository.ConfirmEmail(ctx, userID, time.Now()); err != nil {
			return "", err
		}
	}

	target, err := s.resolveRedirect(redirectTo)
	if err != nil {
		return s.siteRedirect(), nil
	}
	return target, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.userRepository.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{
		ID:       p.ID.String(),
		FullName: p.FullName,
		Phone:    p.Phone,
		CPF:      p.CPF,
	}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	fields := make(map[string]any, 3)
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.CPF != nil {
		fields["cpf"] = *req.CPF
	}
	if len(fields) == 0 {
		return domain.ErrEmptyProfileUpdate
	}
	return s.userRepository.UpdateProfile(ctx, userID, fields)
}

func (s *authService) Subscribe(ctx context.Context, clientID string, handler func(domain.AuthEvent)) (Subscription, error) {
	return s.events.Subscribe(ctx, clientID, handler)
}

func (s *authService) issueSession(ctx context.Context, u *entities.User) (*domain.Session, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID.String(), u.Email, s.config.SessionTTL)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        toUserResponse(u),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) publish(ctx context.Context, event domain.AuthEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		log.Warnw("failed to publish auth event", "type", event.Type, "client_id", event.ClientID, "error", err)
	}
}

// sendConfirmation mails the verification link. Sign-up succeeds even when
// the mail cannot be sent.
func (s *authService) sendConfirmation(u *entities.User, name, redirectTo string) {
	if s.mailer == nil {
		return
	}

	token, err := s.jwtService.GenerateEmailConfirmationToken(u.ID.String(), redirectTo, confirmationTTL)
	if err != nil {
		log.Warnw("failed to create confirmation token", "user_id", u.ID, "error", err)
		return
	}

	link := strings.TrimRight(s.config.AppURL, "/") + verifyEmailPath + "?token=" + url.QueryEscape(token)
	body, err := mailing.ConfirmSignUpBody(name, link)
	if err != nil {
		log.Warnw("failed to render confirmation mail", "user_id", u.ID, "error", err)
		return
	}

	if err := s.mailer.SendMail(u.Email, confirmationMailTitle, body); err != nil {
		log.Warnw("failed to send confirmation mail", "user_id", u.ID, "error", err)
	}
}

func (s *authService) siteRedirect() string {
	return strings.TrimRight(s.config.AppURL, "/") + s.config.SiteRedirectPath
}

// resolveRedirect only allows targets on the site's own origin.
func (s *authService) resolveRedirect(redirectTo string) (string, error) {
	if redirectTo == "" {
		return s.siteRedirect(), nil
	}

	target, err := url.Parse(redirectTo)
	if err != nil {
		return "", domain.ErrInvalidRedirect
	}
	site, err := url.Parse(s.config.AppURL)
	if err != nil {
		return "", domain.ErrInvalidRedirect
	}
	if !strings.EqualFold(target.Scheme, site.Scheme) || !strings.EqualFold(target.Host, site.Host) {
		return "", domain.ErrInvalidRedirect
	}
	return target.String(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entities.User) domain.User {
	return domain.User{
		ID:               u.ID.String(),
		Email:            u.Email,
		Metadata:         u.Metadata,
		EmailConfirmedAt: u.EmailConfirmedAt,
		CreatedAt:        u.CreatedAt,
	}
}
