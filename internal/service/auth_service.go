package service

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/repository"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrSessionNotFound      = errors.New("session not found or expired")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidSignUp        = errors.New("name, a valid email, a password of at least 8 characters and a role are required")
)

const minPasswordLength = 8

// SessionListener is told when a session ends, so state tied to it can be dropped.
type SessionListener interface {
	SessionEnded(sessionID string)
}

// AuthSession is the signed-in state handed to whoever needs the current user.
type AuthSession struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
	User    *domain.User   `json:"user"`
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// ProfileUpdate changes the non-nil fields of a profile.
type ProfileUpdate struct {
	Name           *string
	AvatarURL      *string
	Bio            *string
	Location       *string
	Phone          *string
	OrganizationID *string
}

type AuthService interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, in SignUpInput) (*AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	// Restore resumes the session a token was issued for.
	Restore(ctx context.Context, token string) (*AuthSession, error)
	// SignOut revokes a session. Signing out twice is not an error.
	SignOut(ctx context.Context, sessionID string) error
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	jwtSecret     string
	jwtExpiration time.Duration
	listeners     []SessionListener
	logger        *zap.Logger
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	jwtExpiration time.Duration,
	logger *zap.Logger,
	listeners ...SessionListener,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		listeners:     listeners,
		logger:        logger,
	}
}

// SignUp handles new user registration.
func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*AuthSession, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || len(in.Password) < minPasswordLength || !validRole(in.Role) {
		return nil, ErrInvalidSignUp
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, ErrInvalidSignUp
	}

	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Role:         in.Role,
	}
	// The unique email index catches a concurrent sign-up that won the race.
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	s.logger.Info("User signed up", zap.String("userId", user.ID), zap.String("role", string(user.Role)))

	return s.startSession(ctx, user)
}

// SignIn checks credentials and opens a new session.
func (s *authService) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	if email == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	return s.startSession(ctx, user)
}

func (s *authService) startSession(ctx context.Context, user *domain.User) (*AuthSession, error) {
	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtExpiration),
	}

	token, err := s.generateJWT(user, session)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	user.PasswordHash = ""
	return &AuthSession{Token: token, Session: session, User: user}, nil
}

// Restore validates a token and loads the session and user behind it.
func (s *authService) Restore(ctx context.Context, token string) (*AuthSession, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Expired(time.Now()) || session.UserID != claims.UserID {
		return nil, ErrSessionNotFound
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return &AuthSession{Token: token, Session: *session, User: user}, nil
}

// SignOut deletes the session and tells listeners it ended.
func (s *authService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	for _, l := range s.listeners {
		l.SessionEnded(sessionID)
	}
	s.logger.Debug("Session ended", zap.String("sessionId", sessionID))
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidationFailed)
		}
		user.Name = name
	}
	setIf(&user.AvatarURL, upd.AvatarURL)
	setIf(&user.Bio, upd.Bio)
	setIf(&user.Location, upd.Location)
	setIf(&user.Phone, upd.Phone)
	setIf(&user.OrganizationID, upd.OrganizationID)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func validRole(r domain.Role) bool {
	return r == domain.RoleCoach || r == domain.RoleAthlete
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	SessionID string      `json:"sid"`
	UserID    string      `json:"uid"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT creates a signed token for a session.
func (s *authService) generateJWT(user *domain.User, session domain.Session) (string, error) {
	claims := &jwtClaims{
		SessionID: session.ID,
		UserID:    user.ID,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			Issuer:    "coach-studio",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) parseJWT(tokenString string) (*jwtClaims, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.SessionID == "" || claims.UserID == "" {
		return nil, errors.New("missing claims")
	}
	return claims, nil
}
