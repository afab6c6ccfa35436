package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/repository"
	"NGO_Platform/internal/store"
)

// UserStore is the part of the store the auth flows need.
type UserStore interface {
	AddUser(ctx context.Context, data model.Record) (string, error)
	GetUserByID(ctx context.Context, id string) (model.Record, error)
	GetUserByEmail(ctx context.Context, email string) (model.Record, error)
	UpdateUser(ctx context.Context, id string, updates model.Record) error
}

// Notifier delivers a reset code to the account owner.
type Notifier interface {
	SendResetCode(ctx context.Context, email, name, code string, ttl time.Duration) error
}

// AuthRecorder counts auth outcomes. metrics.Collector implements it.
type AuthRecorder interface {
	RecordAuthEvent(event, outcome string)
}

type AuthConfig struct {
	ResetCodeTTL time.Duration
	// ExposeResetCode returns the code in the forgot-password response (demo mode).
	ExposeResetCode bool
}

type AuthResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

type ForgotResult struct {
	// Code is empty unless AuthConfig.ExposeResetCode is set.
	Code string
}

type AuthService struct {
	users    UserStore
	tokens   *pkg.TokenManager
	hasher   *Hasher
	revoked  repository.TokenBlocklist
	notifier Notifier
	events   *Events
	metrics  AuthRecorder
	cfg      AuthConfig
	logger   *slog.Logger
	now      func() time.Time
}

type AuthOption func(*AuthService)

func WithBlocklist(b repository.TokenBlocklist) AuthOption {
	return func(s *AuthService) { s.revoked = b }
}

func WithNotifier(n Notifier) AuthOption {
	return func(s *AuthService) { s.notifier = n }
}

func WithEvents(e *Events) AuthOption {
	return func(s *AuthService) { s.events = e }
}

func WithAuthRecorder(r AuthRecorder) AuthOption {
	return func(s *AuthService) { s.metrics = r }
}

func WithAuthConfig(cfg AuthConfig) AuthOption {
	return func(s *AuthService) { s.cfg = cfg }
}

func WithLogger(l *slog.Logger) AuthOption {
	return func(s *AuthService) { s.logger = l }
}

func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(users UserStore, tokens *pkg.TokenManager, hasher *Hasher, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		cfg:    AuthConfig{ResetCodeTTL: 15 * time.Minute, ExposeResetCode: true},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}
	if s.cfg.ResetCodeTTL <= 0 {
		s.cfg.ResetCodeTTL = 15 * time.Minute
	}
	return s
}

func (s *AuthService) record(event, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordAuthEvent(event, outcome)
	}
}

// Register creates a password account. userType defaults to donor;
// platform_admin cannot be self-assigned.
func (s *AuthService) Register(ctx context.Context, name, email, password, userType string) (*AuthResult, error) {
	if userType == "" {
		userType = model.UserTypeDonor
	}
	if userType == model.UserTypePlatformAdmin {
		s.record("register", "rejected")
		return nil, ErrAdminSignup
	}
	if !model.ValidUserType(userType) {
		s.record("register", "rejected")
		return nil, ErrUnknownUserType
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		s.record("register", "conflict")
		return nil, store.ErrEmailTaken
	} else if !store.IsNotFound(err) {
		return nil, internal("lookup user", err)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, internal("hash password", err)
	}

	rec := model.Record{
		"name":     name,
		"email":    email,
		"password": hash,
		"userType": userType,
		"avatar":   model.DefaultAvatar(name),
		"verified": false,
	}
	id, err := s.users.AddUser(ctx, rec)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			s.record("register", "conflict")
			return nil, err
		}
		return nil, internal("add user", err)
	}
	rec["id"] = id

	res, err := s.issue(rec)
	if err != nil {
		return nil, err
	}
	s.record("register", "success")
	s.events.Emit(ctx, pkg.EventUserRegistered, id, map[string]any{"userType": userType})
	return res, nil
}

// Login checks the password. Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			s.record("login", "failure")
			return nil, ErrInvalidCredentials
		}
		return nil, internal("lookup user", err)
	}

	ok, err := s.hasher.Compare(ctx, user.String("password"), password)
	if err != nil {
		return nil, internal("compare password", err)
	}
	if !ok {
		s.record("login", "failure")
		return nil, ErrInvalidCredentials
	}

	res, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.record("login", "success")
	return res, nil
}

// ForgotPassword stores a fresh reset code on the user and hands it to the notifier.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*ForgotResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			s.record("forgot_password", "failure")
			return nil, ErrNoAccount
		}
		return nil, internal("lookup user", err)
	}

	code, err := pkg.ResetCode()
	if err != nil {
		return nil, internal("generate reset code", err)
	}
	expiry := s.now().Add(s.cfg.ResetCodeTTL)
	if err := s.users.UpdateUser(ctx, user.ID(), model.Record{
		"resetCode":       code,
		"resetCodeExpiry": model.Timestamp(expiry),
	}); err != nil {
		return nil, internal("store reset code", err)
	}

	if err := s.notifier.SendResetCode(ctx, email, user.String("name"), code, s.cfg.ResetCodeTTL); err != nil {
		if !s.cfg.ExposeResetCode {
			return nil, internal("send reset code", err)
		}
		s.logger.Warn("reset code delivery failed",
			slog.String("user_id", user.ID()),
			slog.String("error", err.Error()),
		)
	}

	s.record("forgot_password", "success")
	s.events.Emit(ctx, pkg.EventPasswordResetRequest, user.ID(), nil)

	res := &ForgotResult{}
	if s.cfg.ExposeResetCode {
		res.Code = code
	}
	return res, nil
}

// ResetPassword replaces the password when code matches and has not expired.
// A stored expiry that cannot be parsed counts as expired.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			s.record("reset_password", "failure")
			return ErrInvalidEmail
		}
		return internal("lookup user", err)
	}

	stored := user.String("resetCode")
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		s.record("reset_password", "failure")
		return ErrInvalidResetCode
	}
	if raw := user.String("resetCodeExpiry"); raw != "" {
		expiry, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil || expiry.Before(s.now()) {
			s.record("reset_password", "expired")
			return ErrResetCodeExpired
		}
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return err
		}
		return internal("hash password", err)
	}
	if err := s.users.UpdateUser(ctx, user.ID(), model.Record{
		"password":        hash,
		"resetCode":       nil,
		"resetCodeExpiry": nil,
	}); err != nil {
		return internal("store new password", err)
	}
	s.record("reset_password", "success")
	return nil
}

// OAuthLogin signs in an externally verified identity, creating the account
// on first sight. Repeated calls with one email resolve to one user.
func (s *AuthService) OAuthLogin(ctx context.Context, name, email, avatar string) (*AuthResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !store.IsNotFound(err) {
		return nil, internal("lookup user", err)
	}

	if user == nil {
		if avatar == "" {
			avatar = model.DefaultAvatar(name)
		}
		rec := model.Record{
			"name":     name,
			"email":    email,
			"avatar":   avatar,
			"userType": model.UserTypeDonor,
			"verified": true,
			"googleId": true,
		}
		id, err := s.users.AddUser(ctx, rec)
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			// created concurrently
			if user, err = s.users.GetUserByEmail(ctx, email); err != nil {
				return nil, internal("lookup user", err)
			}
		case err != nil:
			return nil, internal("add user", err)
		default:
			rec["id"] = id
			user = rec
			s.events.Emit(ctx, pkg.EventUserRegistered, id, map[string]any{"userType": model.UserTypeDonor, "oauth": true})
		}
	}

	res, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.record("oauth", "success")
	return res, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *pkg.Claims) error {
	if s.revoked == nil || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return internal("revoke token", err)
	}
	s.record("logout", "success")
	return nil
}

// Authenticate verifies a bearer token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*pkg.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, &Error{Kind: KindForbidden, Message: MsgInvalidToken, Err: err}
	}
	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, internal("check revocation", err)
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

func (s *AuthService) issue(user model.Record) (*AuthResult, error) {
	token, _, err := s.tokens.Issue(user.ID(), user.String("email"), user.String("userType"))
	if err != nil {
		return nil, internal("sign token", err)
	}
	return &AuthResult{User: model.UserFromRecord(user), Token: token}, nil
}

// LogNotifier writes reset codes to the log instead of mailing them.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) SendResetCode(ctx context.Context, email, _ string, code string, ttl time.Duration) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "password reset code issued",
		slog.String("email", email),
		slog.String("code", code),
		slog.Duration("ttl", ttl),
	)
	return nil
}
