package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

type authResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         remoteUser  `json:"user"`
	Session      *sessionRef `json:"session"`
}

type sessionRef struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type remoteUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Metadata  struct {
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

func (u remoteUser) toModel() model.User {
	return model.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Metadata.Username,
		AvatarURL: u.Metadata.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func (r authResponse) toSession() *model.Session {
	sess := &model.Session{
		User:         r.User.toModel(),
		Token:        r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
	expiresIn := r.ExpiresIn
	// The sign-up endpoint nests tokens under "session"; the token
	// endpoint returns them at the top level.
	if sess.Token == "" && r.Session != nil {
		sess.Token = r.Session.AccessToken
		sess.RefreshToken = r.Session.RefreshToken
		expiresIn = r.Session.ExpiresIn
	}
	if expiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	return sess
}

// SignIn exchanges credentials for a session. Known failure categories
// come back as ErrInvalidCredentials or ErrEmailNotConfirmed.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &resp); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	sess := resp.toSession()
	c.listeners.notify(sess)
	return sess, nil
}

// SignUp registers an account with the username stored as user metadata.
// When the service requires email confirmation it returns the new user
// without tokens; the returned session then has an empty Token.
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*model.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"username": username},
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, &resp); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	sess := resp.toSession()
	if sess.Token != "" {
		c.listeners.notify(sess)
	}
	return sess, nil
}

// SignOut revokes the token on the hosted service.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	c.listeners.notify(nil)
	return nil
}

// GetSession resolves the identity behind an access token.
func (c *Client) GetSession(ctx context.Context, token string) (*model.User, error) {
	var resp remoteUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	user := resp.toModel()
	return &user, nil
}

// OnSessionChange registers fn to run after every sign-in and sign-out
// performed through this client. A nil session means signed out. The
// returned function removes the listener.
func (c *Client) OnSessionChange(fn func(*model.Session)) func() {
	return c.listeners.add(fn)
}

type listenerSet struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(*model.Session)
}

func newListenerSet() *listenerSet {
	return &listenerSet{fns: make(map[int]func(*model.Session))}
}

func (s *listenerSet) add(fn func(*model.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *listenerSet) notify(sess *model.Session) {
	s.mu.Lock()
	fns := make([]func(*model.Session), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}
