package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

// Gate owns authentication state and the token lifecycle. It is the only
// writer of the credential store's auth keys outside the HTTP client's
// 401 invalidation path.
type Gate struct {
	mu      sync.Mutex
	client  *api.Client
	creds   api.CredentialStore
	session Session
}

func NewGate(client *api.Client, creds api.CredentialStore) *Gate {
	return &Gate{client: client, creds: creds}
}

// Current returns a copy of the session state.
func (g *Gate) Current() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// InitAuth restores the session from persisted credentials at startup. When
// a token and cached user are both present the token is validated against
// GET /customer/me; any failure clears the stored credentials and lands in
// the anonymous state. Callers must wait for it before rendering protected
// content.
func (g *Gate) InitAuth(ctx context.Context) {
	token, tokenErr := g.creds.Get(storage.KeyAccessToken)
	cached, userErr := g.creds.Get(storage.KeyUserData)

	if tokenErr != nil || userErr != nil || strings.TrimSpace(token) == "" || cached == "" {
		g.setSession(Session{})
		return
	}

	if tokenExpired(token) {
		g.clearCredentials()
		g.setSession(Session{})
		return
	}

	var user User
	if err := g.client.Get(ctx, "/customer/me", &user); err != nil {
		g.clearCredentials()
		g.setSession(Session{})
		return
	}

	g.setSession(Session{User: &user, IsAuthenticated: true, IsGuest: g.isGuestToken(token)})
}

type loginPayload struct {
	AccessToken string `json:"access_token"`
	Customer    *User  `json:"customer"`
	User        *User  `json:"user"`
}

// Login authenticates a registered customer. The failure message prefers the
// server's own wording, then a connectivity hint, then the raw error text.
func (g *Gate) Login(ctx context.Context, email, password string) Result {
	if email == "" || password == "" {
		return Result{Error: "Email and password are required"}
	}

	var payload loginPayload
	err := g.client.Post(ctx, "/customer/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return Result{Error: api.ErrorMessage(err)}
	}

	user := payload.Customer
	if user == nil {
		user = payload.User
	}
	if payload.AccessToken == "" || user == nil {
		return Result{Error: "Login response is missing a token or user"}
	}

	g.persistUserSession(payload.AccessToken, user)
	g.setSession(Session{User: user, IsAuthenticated: true})
	return Result{Success: true, User: user}
}

// Register creates an account, then immediately attempts to log in with the
// same credentials. A failed auto-login is a soft success: the registered
// user is returned without a session rather than reported as an error.
func (g *Gate) Register(ctx context.Context, req RegisterRequest) Result {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return Result{Error: "Name, email and password are required"}
	}

	var registered User
	if err := g.client.Post(ctx, "/customer/register", req, &registered); err != nil {
		return Result{Error: api.ErrorMessage(err)}
	}

	if login := g.Login(ctx, req.Email, req.Password); login.Success {
		return login
	}

	return Result{Success: true, User: &registered}
}

type guestPayload struct {
	AccessToken string `json:"access_token"`
	Guest       *User  `json:"guest"`
	User        *User  `json:"user"`
}

// GuestLogin exchanges a table token for a table-scoped guest session. The
// guest token is persisted under its own key, alongside the shared access
// token, so a guest session stays distinguishable later.
func (g *Gate) GuestLogin(ctx context.Context, name, tableToken string) Result {
	if name == "" || tableToken == "" {
		return Result{Error: "Name and table token are required"}
	}

	var payload guestPayload
	err := g.client.Post(ctx, "/guest/auth/login", map[string]string{
		"name":        name,
		"table_token": tableToken,
	}, &payload)
	if err != nil {
		return Result{Error: api.ErrorMessage(err)}
	}
	if payload.AccessToken == "" {
		return Result{Error: "Guest login response is missing a token"}
	}

	user := payload.Guest
	if user == nil {
		user = payload.User
	}
	if user == nil {
		user = &User{Name: name}
	}

	g.persistUserSession(payload.AccessToken, user)
	_ = g.creds.Set(storage.KeyGuestToken, payload.AccessToken)
	_ = g.creds.Set(storage.KeyTableToken, tableToken)

	g.setSession(Session{User: user, IsAuthenticated: true, IsGuest: true})
	return Result{Success: true, User: user}
}

// Logout clears every persisted credential key and returns to anonymous.
func (g *Gate) Logout() {
	g.clearCredentials()
	g.setSession(Session{})
}

func (g *Gate) setSession(session Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = session
}

func (g *Gate) persistUserSession(token string, user *User) {
	_ = g.creds.Set(storage.KeyAccessToken, token)
	if encoded, err := json.Marshal(user); err == nil {
		_ = g.creds.Set(storage.KeyUserData, string(encoded))
	}
}

func (g *Gate) clearCredentials() {
	for _, key := range []string{
		storage.KeyAccessToken,
		storage.KeyUserData,
		storage.KeyGuestToken,
		storage.KeyTableToken,
	} {
		_ = g.creds.Remove(key)
	}
}

func (g *Gate) isGuestToken(token string) bool {
	guest, err := g.creds.Get(storage.KeyGuestToken)
	return err == nil && guest != "" && guest == token
}
