package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/google/uuid"

	"github.com/youssefmarket/storefront-api/config"
	"github.com/youssefmarket/storefront-api/models"
	"github.com/youssefmarket/storefront-api/store"
)

// Session states. Login verifies credentials synchronously, so callers only
// ever observe anonymous or authenticated: a failed attempt returns directly
// to anonymous with the error, and logout returns an authenticated session
// to anonymous.
const (
	StateAnonymous     = "anonymous"
	StateAuthenticated = "authenticated"
)

// Session is an established identity for one bearer token
type Session struct {
	Token string
	State string
	User  *models.User
}

// Resolver establishes the current actor and role for each request and owns
// the set of live sessions. Sessions live in process memory: in demo mode
// that is the only session store; in configured mode a token that is not in
// memory (for example after a restart) is revalidated as a signed backend
// access token and its profile reloaded from the data source.
type Resolver struct {
	mu         sync.RWMutex
	src        store.DataSource
	configured bool
	secret     string
	sessions   map[string]*Session
	// Signed tokens stay verifiable after logout until they expire, so
	// explicitly logged-out tokens are remembered, keyed to the time their
	// signature stops validating, and refused resumption until then.
	revoked map[string]time.Time
	tokens  *validator.Validator // nil in demo mode
}

// NewResolver creates a resolver over the selected data source
func NewResolver(cfg *config.Config, src store.DataSource) *Resolver {
	r := &Resolver{
		src:        src,
		configured: cfg.IsBackendConfigured(),
		secret:     cfg.BackendAPIKey,
		sessions:   make(map[string]*Session),
		revoked:    make(map[string]time.Time),
	}
	if r.configured {
		v, err := newTokenValidator(r.secret)
		if err != nil {
			// Signed-token resumption is an extra; in-memory sessions still work
			log.Printf("Failed to set up token validator, session resumption disabled: %v", err)
		} else {
			r.tokens = v
		}
	}
	return r
}

// Login verifies credentials through the data source and establishes an
// authenticated session on success. Failure leaves the caller anonymous.
func (r *Resolver) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := r.src.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return r.establish(user)
}

// Register creates a new client-role identity and logs it in immediately
func (r *Resolver) Register(ctx context.Context, name, email, password string) (*Session, error) {
	user, err := r.src.RegisterUser(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return r.establish(user)
}

// establish issues a token and records the authenticated session
func (r *Resolver) establish(user *models.User) (*Session, error) {
	token := ""
	if r.configured {
		signed, err := signToken(r.secret, user.ID)
		if err != nil {
			return nil, err
		}
		token = signed
	} else {
		// Demo mode: opaque token, session exists only for this process
		token = uuid.NewString()
	}

	sess := &Session{Token: token, State: StateAuthenticated, User: user}
	r.mu.Lock()
	r.sessions[token] = sess
	// Tokens signed within the same second are identical for a user, so a
	// fresh login lifts any earlier revocation of this exact token.
	delete(r.revoked, token)
	r.mu.Unlock()
	return sess, nil
}

// Resolve returns the session for a bearer token, or false for anonymous
func (r *Resolver) Resolve(ctx context.Context, token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}

	r.mu.RLock()
	sess, ok := r.sessions[token]
	_, gone := r.revoked[token]
	r.mu.RUnlock()
	if ok {
		return sess, true
	}
	if gone {
		return nil, false
	}

	// Configured mode: accept a valid signed token from a previous process
	// and reload its profile from the backend.
	if r.tokens == nil {
		return nil, false
	}
	userID, err := tokenSubject(ctx, r.tokens, token)
	if err != nil {
		return nil, false
	}
	user, err := r.src.GetUser(ctx, userID)
	if err != nil {
		return nil, false
	}

	sess = &Session{Token: token, State: StateAuthenticated, User: user}
	r.mu.Lock()
	r.sessions[token] = sess
	r.mu.Unlock()
	return sess, true
}

// Logout drops the session, returning the actor to anonymous. Per-session
// derived state held elsewhere (cart lines keyed by this token) dies with
// the token. A signed token remains cryptographically valid until it
// expires, so it is also marked revoked to keep it from resuming.
func (r *Resolver) Logout(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	if r.tokens != nil {
		now := time.Now()
		for tok, until := range r.revoked {
			if now.After(until) {
				delete(r.revoked, tok)
			}
		}
		r.revoked[token] = now.Add(tokenTTL)
	}
	r.mu.Unlock()
}

// IsAdmin reports whether the session belongs to an admin actor
func (s *Session) IsAdmin() bool {
	return s != nil && s.State == StateAuthenticated && s.User.IsAdmin()
}

// IsClient reports whether the session belongs to a client actor
func (s *Session) IsClient() bool {
	return s != nil && s.State == StateAuthenticated && s.User.IsClient()
}
