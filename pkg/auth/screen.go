package auth

import (
	"context"
	"sync"

	"SmartCart-Backend/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

type (
	Navigator interface {
		Navigate(path string)
	}

	// Notifier shows a transient message to the person using the screen.
	Notifier interface {
		Success(message string)
		Error(message string)
	}

	Form struct {
		Email    string
		Password string
		FullName string
		Phone    string
		CPF      string
	}

	// Screen is the stateful sign-in / sign-up flow of one client. Mount
	// starts listening for session changes and Unmount stops it.
	Screen struct {
		auth         AuthService
		navigator    Navigator
		notifier     Notifier
		redirectPath string
		clientID     string

		mu           sync.Mutex
		subscription Subscription
		session      *domain.Session
	}
)

func NewScreen(auth AuthService, navigator Navigator, notifier Notifier, redirectPath string) *Screen {
	return &Screen{
		auth:         auth,
		navigator:    navigator,
		notifier:     notifier,
		redirectPath: redirectPath,
		clientID:     uuid.NewString(),
	}
}

func (s *Screen) ClientID() string {
	return s.clientID
}

// Session returns the session established by the last successful submit.
func (s *Screen) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Mount sends the user on when accessToken is already a live session and
// subscribes to session changes for as long as the screen is mounted.
func (s *Screen) Mount(ctx context.Context, accessToken string) error {
	if accessToken != "" {
		if session, err := s.auth.GetSession(ctx, accessToken); err == nil && session != nil {
			s.navigator.Navigate(s.redirectPath)
		}
	}

	sub, err := s.auth.Subscribe(ctx, s.clientID, func(event domain.AuthEvent) {
		if event.Type == domain.AuthEventSignedIn && event.Session != nil {
			s.navigator.Navigate(s.redirectPath)
		}
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	previous := s.subscription
	s.subscription = sub
	s.mu.Unlock()

	if previous != nil {
		return previous.Unsubscribe()
	}
	return nil
}

func (s *Screen) Unmount() error {
	s.mu.Lock()
	sub := s.subscription
	s.subscription = nil
	s.mu.Unlock()

	if sub == nil {
		return nil
	}
	return sub.Unsubscribe()
}

// Submit runs the sign-in or sign-up for the form. Failures go to the
// notifier; Submit itself never fails.
func (s *Screen) Submit(ctx context.Context, mode Mode, form Form) {
	var (
		session *domain.Session
		message string
		err     error
	)

	switch mode {
	case ModeSignUp:
		var res *domain.SignUpResponse
		res, err = SignUpWithProfile(ctx, s.auth, domain.SignUpRequest{
			Email:    form.Email,
			Password: form.Password,
			FullName: form.FullName,
			Phone:    form.Phone,
			CPF:      form.CPF,
			ClientID: s.clientID,
		})
		if res != nil {
			session = res.Session
		}
		message = domain.MessageSuccessSignUp
	default:
		session, err = s.auth.SignIn(ctx, domain.SignInRequest{
			Email:    form.Email,
			Password: form.Password,
			ClientID: s.clientID,
		})
		message = domain.MessageSuccessSignIn
	}

	if err != nil {
		s.notifier.Error(errorMessage(err))
		return
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.notifier.Success(message)
}

// SignUpWithProfile creates the account and then writes phone and CPF onto
// its profile. The profile write is best effort: its failure is logged and
// the sign-up still succeeds.
func SignUpWithProfile(ctx context.Context, auth AuthService, req domain.SignUpRequest) (*domain.SignUpResponse, error) {
	res, err := auth.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.User.ID == "" {
		return res, nil
	}

	phone, cpf := req.Phone, req.CPF
	if err := auth.UpdateProfile(ctx, res.User.ID, domain.UpdateProfileRequest{
		Phone: &phone,
		CPF:   &cpf,
	}); err != nil {
		log.Warnw("failed to save profile details after sign-up", "user_id", res.User.ID, "error", err)
	}
	return res, nil
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return domain.MessageFailedAuthenticate
	}
	return err.Error()
}
