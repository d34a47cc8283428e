package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/internal/testutil"
	"SmartCart-Backend/pkg/jwt"
	"SmartCart-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeSubscription struct {
	unsubscribed int
}

func (s *fakeSubscription) Unsubscribe() error {
	s.unsubscribed++
	return nil
}

type fakeAuthService struct {
	session   *domain.Session
	signInErr error
	signUpErr error
	patchErr  error

	handler      func(domain.AuthEvent)
	subscription *fakeSubscription
	patches      []domain.UpdateProfileRequest
	patchedUser  string
}

func (f *fakeAuthService) GetSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	if f.session == nil || f.session.AccessToken != accessToken {
		return nil, domain.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeAuthService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &domain.Session{AccessToken: "signed-in"}, nil
}

func (f *fakeAuthService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.SignUpResponse, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &domain.SignUpResponse{
		User:    domain.User{ID: "user-1", Email: req.Email},
		Session: &domain.Session{AccessToken: "signed-up"},
	}, nil
}

func (f *fakeAuthService) SignOut(ctx context.Context, accessToken string, clientID string) error {
	return nil
}

func (f *fakeAuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	return "", nil
}

func (f *fakeAuthService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return nil, nil
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	f.patchedUser = userID
	f.patches = append(f.patches, req)
	return f.patchErr
}

func (f *fakeAuthService) Subscribe(ctx context.Context, clientID string, handler func(domain.AuthEvent)) (Subscription, error) {
	f.handler = handler
	f.subscription = &fakeSubscription{}
	return f.subscription, nil
}

type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *fakeNavigator) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *fakeNotifier) Error(message string)   { n.errors = append(n.errors, message) }

type emptyError struct{}

func (emptyError) Error() string { return "" }

// --- Tests ---

func TestSignUpPatchesProfileExactlyOnce(t *testing.T) {
	svc := &fakeAuthService{}
	notifier := &fakeNotifier{}
	screen := NewScreen(svc, &fakeNavigator{}, notifier, "/produtos")

	screen.Submit(context.Background(), ModeSignUp, Form{
		Email:    "ana@example.com",
		Password: "secret123",
		FullName: "Ana Costa",
		Phone:    "(11) 99999-9999",
		CPF:      "000.000.000-00",
	})

	require.Len(t, svc.patches, 1)
	assert.Equal(t, "user-1", svc.patchedUser)
	require.NotNil(t, svc.patches[0].Phone)
	require.NotNil(t, svc.patches[0].CPF)
	assert.Equal(t, "(11) 99999-9999", *svc.patches[0].Phone)
	assert.Equal(t, "000.000.000-00", *svc.patches[0].CPF)
	assert.Nil(t, svc.patches[0].FullName)

	assert.Equal(t, []string{domain.MessageSuccessSignUp}, notifier.successes)
	assert.Empty(t, notifier.errors)
	require.NotNil(t, screen.Session())
	assert.Equal(t, "signed-up", screen.Session().AccessToken)
}

func TestSignUpIgnoresProfilePatchFailure(t *testing.T) {
	svc := &fakeAuthService{patchErr: errors.New("permission denied")}
	notifier := &fakeNotifier{}
	screen := NewScreen(svc, &fakeNavigator{}, notifier, "/produtos")

	screen.Submit(context.Background(), ModeSignUp, Form{Email: "ana@example.com", Password: "secret123", FullName: "Ana"})

	assert.Len(t, svc.patches, 1)
	assert.Equal(t, []string{domain.MessageSuccessSignUp}, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestSubmitReportsFailures(t *testing.T) {
	testCases := []struct {
		name     string
		mode     Mode
		svc      *fakeAuthService
		expected string
	}{
		{"sign-in error text", ModeSignIn, &fakeAuthService{signInErr: domain.ErrInvalidCredentials}, "invalid login credentials"},
		{"sign-up error text", ModeSignUp, &fakeAuthService{signUpErr: domain.ErrEmailAlreadyRegistered}, "user already registered"},
		{"fallback message", ModeSignIn, &fakeAuthService{signInErr: emptyError{}}, domain.MessageFailedAuthenticate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			screen := NewScreen(tc.svc, &fakeNavigator{}, notifier, "/produtos")

			screen.Submit(context.Background(), tc.mode, Form{Email: "ana@example.com", Password: "x"})

			assert.Equal(t, []string{tc.expected}, notifier.errors)
			assert.Empty(t, notifier.successes)
			assert.Empty(t, tc.svc.patches)
			assert.Nil(t, screen.Session())
		})
	}
}

func TestMountRedirectsExistingSession(t *testing.T) {
	svc := &fakeAuthService{session: &domain.Session{AccessToken: "live"}}
	nav := &fakeNavigator{}
	screen := NewScreen(svc, nav, &fakeNotifier{}, "/produtos")

	require.NoError(t, screen.Mount(context.Background(), "live"))
	assert.Equal(t, []string{"/produtos"}, nav.visited())
}

func TestMountWithoutSessionStays(t *testing.T) {
	svc := &fakeAuthService{}
	nav := &fakeNavigator{}
	screen := NewScreen(svc, nav, &fakeNotifier{}, "/produtos")

	require.NoError(t, screen.Mount(context.Background(), "stale"))
	require.NoError(t, screen.Mount(context.Background(), ""))
	assert.Empty(t, nav.visited())
}

func TestSessionEventsDriveNavigation(t *testing.T) {
	svc := &fakeAuthService{}
	nav := &fakeNavigator{}
	screen := NewScreen(svc, nav, &fakeNotifier{}, "/produtos")

	require.NoError(t, screen.Mount(context.Background(), ""))
	require.NotNil(t, svc.handler)

	svc.handler(domain.AuthEvent{Type: domain.AuthEventSignedOut})
	svc.handler(domain.AuthEvent{Type: domain.AuthEventSignedIn})
	assert.Empty(t, nav.visited())

	svc.handler(domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: &domain.Session{AccessToken: "t"}})
	assert.Equal(t, []string{"/produtos"}, nav.visited())

	sub := svc.subscription
	require.NoError(t, screen.Unmount())
	require.NoError(t, screen.Unmount())
	assert.Equal(t, 1, sub.unsubscribed)
}

func TestRemountReplacesSubscription(t *testing.T) {
	svc := &fakeAuthService{}
	screen := NewScreen(svc, &fakeNavigator{}, &fakeNotifier{}, "/produtos")

	require.NoError(t, screen.Mount(context.Background(), ""))
	first := svc.subscription
	require.NoError(t, screen.Mount(context.Background(), ""))

	assert.Equal(t, 1, first.unsubscribed)
	assert.Equal(t, 0, svc.subscription.unsubscribed)
}

func TestScreenNavigatesAfterSignInOverRedis(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	svc := NewAuthService(
		user.NewUserRepository(db),
		jwt.NewJWTService("test-secret"),
		NewSessionStore(client),
		NewEventBus(client),
		nil,
		Config{AppURL: "http://localhost:8080", SiteRedirectPath: "/produtos", SessionTTL: time.Hour},
	)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, domain.SignUpRequest{Email: "ana@example.com", Password: "secret123", FullName: "Ana"})
	require.NoError(t, err)

	nav := &fakeNavigator{}
	notifier := &fakeNotifier{}
	screen := NewScreen(svc, nav, notifier, "/produtos")
	require.NoError(t, screen.Mount(ctx, ""))
	defer screen.Unmount()

	screen.Submit(ctx, ModeSignIn, Form{Email: "ana@example.com", Password: "secret123"})

	assert.Equal(t, []string{domain.MessageSuccessSignIn}, notifier.successes)
	assert.Eventually(t, func() bool {
		return len(nav.visited()) == 1
	}, time.Second, 10*time.Millisecond)

	other := NewScreen(svc, &fakeNavigator{}, &fakeNotifier{}, "/produtos")
	require.NoError(t, other.Mount(ctx, screen.Session().AccessToken))
	defer other.Unmount()
	assert.Equal(t, []string{"/produtos"}, other.navigator.(*fakeNavigator).visited())
}

type unmountingNavigator struct {
	screen   *Screen
	unmounts chan error
}

func (n *unmountingNavigator) Navigate(path string) {
	n.unmounts <- n.screen.Unmount()
}

func TestScreenCanUnmountWhileNavigating(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	svc := NewAuthService(
		user.NewUserRepository(db),
		jwt.NewJWTService("test-secret"),
		NewSessionStore(client),
		NewEventBus(client),
		nil,
		Config{AppURL: "http://localhost:8080", SiteRedirectPath: "/produtos", SessionTTL: time.Hour},
	)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, domain.SignUpRequest{Email: "ana@example.com", Password: "secret123", FullName: "Ana"})
	require.NoError(t, err)

	nav := &unmountingNavigator{unmounts: make(chan error, 1)}
	screen := NewScreen(svc, nav, &fakeNotifier{}, "/produtos")
	nav.screen = screen
	require.NoError(t, screen.Mount(ctx, ""))

	screen.Submit(ctx, ModeSignIn, Form{Email: "ana@example.com", Password: "secret123"})

	select {
	case err := <-nav.unmounts:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Unmount inside Navigate never returned")
	}
	assert.NoError(t, screen.Unmount())
}

func TestScreenRejectsInvalidSignUp(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	users := user.NewUserRepository(db)
	svc := NewAuthService(
		users,
		jwt.NewJWTService("test-secret"),
		NewSessionStore(client),
		NewEventBus(client),
		nil,
		Config{AppURL: "http://localhost:8080", SiteRedirectPath: "/produtos", SessionTTL: time.Hour},
	)
	notifier := &fakeNotifier{}
	screen := NewScreen(svc, &fakeNavigator{}, notifier, "/produtos")

	screen.Submit(context.Background(), ModeSignUp, Form{Email: "not-an-email", Password: "", FullName: "Ana"})

	assert.Empty(t, notifier.successes)
	assert.Len(t, notifier.errors, 1)
	assert.Nil(t, screen.Session())

	_, err := users.GetUserByEmail(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
