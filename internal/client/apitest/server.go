// Package apitest runs an in-process imitation of the DummyJSON auth API
// for tests: POST /auth/login and GET /auth/me.
package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LoginPath = "/auth/login"
	MePath    = "/auth/me"
)

var signingKey = []byte("apitest")

type ctxKey struct{}

type account struct {
	password string
	user     models.User
}

// Server is a fake DummyJSON backend. The zero configuration issues tokens
// in the "accessToken" field, like the live API.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	accounts   map[string]account
	tokens     map[string]string
	tokenField string
	meStatus   int
	meGate     chan struct{}
	loginCalls int
	meCalls    int
	requestIDs []string
	lastAuth   string
}

// New starts a fake server. Callers must Close it.
func New() *Server {
	s := &Server{
		accounts:   make(map[string]account),
		tokens:     make(map[string]string),
		tokenField: "accessToken",
	}

	r := chi.NewRouter()
	r.Use(s.recordRequest)
	r.Post(LoginPath, s.handleLogin)
	r.With(s.bearer).Get(MePath, s.handleMe)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) LoginURL() string { return s.URL + LoginPath }
func (s *Server) MeURL() string    { return s.URL + MePath }

// AddUser registers an account that can log in with password.
func (s *Server) AddUser(password string, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[user.Username] = account{password: password, user: user}
}

// IssueToken returns a valid token for an already added user without a
// login round trip.
func (s *Server) IssueToken(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueLocked(username)
}

// UseTokenField switches the login response key holding the token
// ("token" or "accessToken").
func (s *Server) UseTokenField(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenField = name
}

// FailMe forces every /auth/me answer to status; 0 restores normal handling.
func (s *Server) FailMe(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meStatus = status
}

// HoldMe makes /auth/me block until the returned release func is called.
func (s *Server) HoldMe() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.meGate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.meGate == gate {
				s.meGate = nil
			}
			s.mu.Unlock()
			close(gate)
		})
	}
}

func (s *Server) LoginCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls
}

func (s *Server) MeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meCalls
}

// RequestIDs lists the X-Request-ID headers seen, in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// LastAuthorization is the Authorization header of the latest /auth/me call.
func (s *Server) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

func (s *Server) issueLocked(username string) string {
	a := s.accounts[username]
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       a.user.ID,
		"username": username,
		"email":    a.user.Email,
		"iat":      time.Now().Unix(),
		"jti":      len(s.tokens),
	}).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	s.tokens[token] = username
	return token
}

func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, r.Header.Get(common.RequestIDHeaderName))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) bearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get(common.AuthorizationHeaderName)
		s.mu.Lock()
		s.lastAuth = auth
		s.mu.Unlock()

		token, ok := strings.CutPrefix(auth, common.BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Access Token is required"})
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, strings.TrimSpace(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.loginCalls++
	s.mu.Unlock()

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON body"})
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Username and password required"})
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[creds.Username]
	if !ok || a.password != creds.Password {
		s.mu.Unlock()
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		return
	}
	token := s.issueLocked(creds.Username)
	field := s.tokenField
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           a.user.ID,
		"username":     a.user.Username,
		"email":        a.user.Email,
		"firstName":    a.user.FirstName,
		"lastName":     a.user.LastName,
		field:          token,
		"refreshToken": "refresh-" + creds.Username,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(ctxKey{}).(string)

	s.mu.Lock()
	s.meCalls++
	gate := s.meGate
	status := s.meStatus
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if status != 0 {
		writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
		return
	}

	s.mu.Lock()
	username, ok := s.tokens[token]
	a := s.accounts[username]
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid/expired Token!"})
		return
	}
	writeJSON(w, http.StatusOK, a.user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
