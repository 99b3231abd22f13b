package internal

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation limits for registration
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MinNameLength     = 3
	MaxNameLength     = 50
)

const tokenPrefix = "fake-jwt-token-"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidCredentials is returned by Login for unknown email/password pairs
var ErrInvalidCredentials = errors.New("Email atau password salah")

// DemoAccount is a built-in login
type DemoAccount struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     UserRole
}

// DemoAccounts are the only credentials Login accepts
var DemoAccounts = []DemoAccount{
	{ID: "1", Name: "Admin User", Email: "admin@roblox.ai", Password: "password123", Role: UserRoleAdmin},
	{ID: "2", Name: "Regular User", Email: "user@roblox.ai", Password: "password123", Role: UserRoleUser},
}

// AuthService signs users in and out against the demo accounts, keeping
// the current user in the store
type AuthService struct {
	store   Store
	tracker *Tracker
	session *SessionStore
}

// NewAuthService creates an AuthService. session, when set, is cleared on logout.
func NewAuthService(store Store, tracker *Tracker, session *SessionStore) *AuthService {
	return &AuthService{store: store, tracker: tracker, session: session}
}

// Login checks email and password against DemoAccounts
func (a *AuthService) Login(email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	for _, acct := range DemoAccounts {
		if acct.Email == email && acct.Password == password {
			user := &User{
				ID:        acct.ID,
				Name:      acct.Name,
				Email:     acct.Email,
				Role:      acct.Role,
				Token:     newToken(),
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			}
			if err := a.persist(user); err != nil {
				return nil, err
			}
			a.track(ActivityLogin)
			LogInfo("Logged in as %s (%s)", user.Email, user.Role)
			return user, nil
		}
	}
	LogDebug("Rejected login for %q", email)
	return nil, ErrInvalidCredentials
}

// Register validates the form and signs the new user in
func (a *AuthService) Register(name, email, password, confirm string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := ValidateRegistration(name, email, password, confirm); err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      UserRoleUser,
		Token:     newToken(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := a.persist(user); err != nil {
		return nil, err
	}
	a.track(ActivityRegister)
	LogInfo("Registered %s", user.Email)
	return user, nil
}

// ValidateRegistration applies the registration form rules
func ValidateRegistration(name, email, password, confirm string) error {
	if password != confirm {
		return NewValidationError("Password tidak cocok")
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return NewValidationError("Password minimal 8 karakter")
	} else if n > MaxPasswordLength {
		return NewValidationError("Password maksimal 128 karakter")
	}
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return NewValidationError("Nama harus 3-50 karakter")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("Format email tidak valid")
	}
	return nil
}

// Logout forgets the current user and clears the chat
func (a *AuthService) Logout() error {
	for _, key := range []string{UserKey, TokenKey, CurrentUserIDKey} {
		if err := a.store.Remove(key); err != nil {
			return err
		}
	}
	if a.session != nil {
		if err := a.session.Clear(); err != nil {
			return err
		}
	}
	LogInfo("Logged out")
	return nil
}

// Current returns the signed-in user, nil when nobody is
func (a *AuthService) Current() (*User, error) {
	var user User
	found, err := GetJSON(a.store, UserKey, &user)
	if err != nil || !found {
		return nil, err
	}
	if token, ok, err := a.store.Get(TokenKey); err == nil && ok {
		user.Token = token
	}
	return &user, nil
}

func (a *AuthService) persist(user *User) error {
	if err := SetJSON(a.store, UserKey, user); err != nil {
		return err
	}
	if err := a.store.Set(TokenKey, user.Token); err != nil {
		return err
	}
	return a.store.Set(CurrentUserIDKey, user.ID)
}

func (a *AuthService) track(activity string) {
	if a.tracker == nil {
		return
	}
	if err := a.tracker.TrackActivity(activity); err != nil {
		LogWarn("Failed to track %s activity: %v", activity, err)
	}
}

func newToken() string {
	return tokenPrefix + uuid.NewString()
}
