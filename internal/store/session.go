package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

var (
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrConfirmationPending = errors.New("confirmation email sent")
	ErrNotSignedIn         = errors.New("not signed in")
)

const sessionRecord = "auth-session"

// AuthGateway is the slice of the remote gateway the session store
// needs. *gateway.Client satisfies it.
type AuthGateway interface {
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignUp(ctx context.Context, email, password, username string) (*model.Session, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (*model.User, error)
	OnSessionChange(fn func(*model.Session)) func()
	UpsertProfile(ctx context.Context, token string, p model.Profile) error
}

// Session tracks the authenticated identity plus loading and error
// flags. The error message is kept for one-shot display: consumers
// read it and then call ClearError.
type Session struct {
	mu   sync.RWMutex
	gw   AuthGateway
	recs *storage.Records

	user    *model.User
	token   string
	loading bool
	errMsg  string

	unsub      func()
	signOutFns []func(userID string)
}

func NewSession(gw AuthGateway, recs *storage.Records) (*Session, error) {
	s := &Session{gw: gw, recs: recs}

	var cached model.Session
	ok, err := recs.Load(sessionRecord, &cached)
	if err != nil {
		return nil, err
	}
	if ok && cached.Token != "" {
		user := cached.User
		s.user = &user
		s.token = cached.Token
	}
	return s, nil
}

// Initialize refreshes the cached identity against the remote service
// and subscribes to session-change events. It is idempotent: calling
// it again while subscribed does nothing and returns the same
// teardown. The teardown must run before re-initializing.
func (s *Session) Initialize(ctx context.Context) (func(), error) {
	s.mu.Lock()
	if s.unsub != nil {
		teardown := s.teardown
		s.mu.Unlock()
		return teardown, nil
	}
	token := s.token
	s.loading = true
	s.mu.Unlock()

	var user *model.User
	var errMsg string
	if token != "" {
		u, err := s.gw.GetSession(ctx, token)
		if err != nil {
			errMsg = err.Error()
		} else {
			user = u
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if errMsg != "" {
		// Stale or revoked token; drop the cached session.
		s.user = nil
		s.token = ""
		s.errMsg = errMsg
		_ = s.recs.Delete(sessionRecord)
	} else if user != nil {
		s.user = user
	}

	s.unsub = s.gw.OnSessionChange(func(sess *model.Session) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sess == nil {
			s.user = nil
			s.token = ""
			_ = s.recs.Delete(sessionRecord)
			return
		}
		user := sess.User
		s.user = &user
		s.token = sess.Token
		_ = s.recs.Save(sessionRecord, sess)
	})
	return s.teardown, nil
}

func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// SignIn authenticates against the remote service. Known failure
// categories map to user-facing messages kept in the error field.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		s.setError("Email and password are required")
		return ErrMissingCredentials
	}

	s.setLoading(true)
	defer s.setLoading(false)

	sess, err := s.gw.SignIn(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrInvalidCredentials):
			s.setError("Invalid email or password")
		case errors.Is(err, gateway.ErrEmailNotConfirmed):
			s.setError("Please confirm your email address before signing in")
		default:
			s.setError(err.Error())
		}
		return err
	}

	s.adopt(sess)
	return nil
}

// SignUp registers a new account. When the service requires email
// confirmation it returns ErrConfirmationPending instead of an
// authenticated session; otherwise the profile row is upserted and the
// session adopted.
func (s *Session) SignUp(ctx context.Context, email, password, username string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		s.setError("Email and password are required")
		return ErrMissingCredentials
	}
	if len(username) < 3 {
		s.setError("Username must be at least 3 characters")
		return ErrUsernameTooShort
	}
	if len(password) < 6 {
		s.setError("Password must be at least 6 characters")
		return ErrPasswordTooShort
	}

	s.setLoading(true)
	defer s.setLoading(false)

	sess, err := s.gw.SignUp(ctx, email, password, username)
	if err != nil {
		s.setError(err.Error())
		return err
	}
	if sess.Token == "" {
		return ErrConfirmationPending
	}

	profile := model.Profile{ID: sess.User.ID, Username: username}
	if err := s.gw.UpsertProfile(ctx, sess.Token, profile); err != nil {
		s.setError(err.Error())
		return err
	}

	s.adopt(sess)
	return nil
}

// SignOut revokes the session remotely, clears the local identity, and
// fires the registered sign-out hooks with the departing user's ID.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.RLock()
	token := s.token
	userID := ""
	if s.user != nil {
		userID = s.user.ID
	}
	hooks := make([]func(string), len(s.signOutFns))
	copy(hooks, s.signOutFns)
	s.mu.RUnlock()

	if token == "" {
		return ErrNotSignedIn
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.SignOut(ctx, token); err != nil {
		s.setError(err.Error())
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	_ = s.recs.Delete(sessionRecord)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(userID)
	}
	return nil
}

// OnSignOut registers a hook run after every successful sign-out, with
// the ID of the user that signed out. Wiring uses this to clear the
// departing user's cart.
func (s *Session) OnSignOut(fn func(userID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signOutFns = append(s.signOutFns, fn)
}

// User returns a copy of the current identity, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last stored error message.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Session) adopt(sess *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := sess.User
	s.user = &user
	s.token = sess.Token
	s.errMsg = ""
	_ = s.recs.Save(sessionRecord, sess)
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}
