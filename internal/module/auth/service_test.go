package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/karimbh/refdata/internal/domain"
)

// --- fakes ---

// fakeJWTService implements jwt.Service for testing.
type fakeJWTService struct {
	token       string
	err         error
	parsedToken *jwt.Token
	parseErr    error
}

func (f *fakeJWTService) GenerateToken(_ string, _ []string, _ time.Duration) (string, error) {
	return f.token, f.err
}
func (f *fakeJWTService) ValidateToken(string) (*jwt.Token, error)                 { return nil, nil }
func (f *fakeJWTService) ValidateAndParse(string) (*jwt.Token, error)              { return nil, nil }
func (f *fakeJWTService) RefreshToken(string) (string, error)                      { return "", nil }
func (f *fakeJWTService) RefreshTokenExtend(string, time.Duration) (string, error) { return "", nil }
func (f *fakeJWTService) RevokeToken(string) error                                 { return nil }
func (f *fakeJWTService) IsTokenRevoked(string) bool                               { return false }
func (f *fakeJWTService) ParseToken(string) (*jwt.Token, error) {
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	if f.parsedToken != nil {
		return f.parsedToken, nil
	}
	return &jwt.Token{ExpiresAt: time.Now().Add(time.Hour)}, nil
}
func (f *fakeJWTService) RevokeAllUserTokens(string) error { return nil }
func (f *fakeJWTService) Close()                           {}

// capturingJWTService captures args passed to GenerateToken.
type capturingJWTService struct {
	fakeJWTService
	token          string
	capturedUserID string
}

func (c *capturingJWTService) GenerateToken(userID string, _ []string, _ time.Duration) (string, error) {
	c.capturedUserID = userID
	return c.token, nil
}

// fakeUserRepo implements domain.UserRepository for testing.
type fakeUserRepo struct {
	user      *domain.User
	getErr    error
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = 1
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	repo := &fakeUserRepo{
		user: &domain.User{
			ID:           42,
			Email:        "op@example.com",
			PasswordHash: hashPassword(t, "correct-horse"),
		},
	}
	jwtSvc := &capturingJWTService{token: "signed-token"}
	svc := NewService(jwtSvc, repo, time.Hour)

	resp, err := svc.Login(context.Background(), "op@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("Token=%q; want signed-token", resp.Token)
	}
	if resp.ExpiresAt == 0 {
		t.Error("ExpiresAt should be set")
	}
	if jwtSvc.capturedUserID != "42" {
		t.Errorf("token subject=%q; want 42", jwtSvc.capturedUserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{
		user: &domain.User{
			ID:           1,
			Email:        "op@example.com",
			PasswordHash: hashPassword(t, "correct-horse"),
		},
	}
	svc := NewService(&fakeJWTService{token: "t"}, repo, time.Hour)

	_, err := svc.Login(context.Background(), "op@example.com", "wrong")
	if !domain.IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_UnknownAccountHidden(t *testing.T) {
	repo := &fakeUserRepo{getErr: domain.ErrNotFound}
	svc := NewService(&fakeJWTService{token: "t"}, repo, time.Hour)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	// A missing account must look exactly like a bad password.
	if !domain.IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_TokenGenerationFailure(t *testing.T) {
	repo := &fakeUserRepo{
		user: &domain.User{
			ID:           1,
			Email:        "op@example.com",
			PasswordHash: hashPassword(t, "correct-horse"),
		},
	}
	svc := NewService(&fakeJWTService{err: errors.New("boom")}, repo, time.Hour)

	_, err := svc.Login(context.Background(), "op@example.com", "correct-horse")
	if !domain.IsInternal(err) {
		t.Errorf("expected internal error, got %v", err)
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(&fakeJWTService{}, repo, time.Hour)

	user, err := svc.Register(context.Background(), "  Operator  ", " op@example.com ", "longenough")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Name != "Operator" || user.Email != "op@example.com" {
		t.Errorf("user=%+v; want trimmed name and email", user)
	}
	if user.PasswordHash == "longenough" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(&fakeJWTService{}, &fakeUserRepo{}, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty_name", "", "op@example.com", "longenough"},
		{"long_name", strings.Repeat("n", 101), "op@example.com", "longenough"},
		{"empty_email", "Op", "", "longenough"},
		{"bad_email", "Op", "not-an-email", "longenough"},
		{"short_password", "Op", "op@example.com", "short"},
		{"long_password", "Op", "op@example.com", strings.Repeat("p", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{createErr: domain.Conflict("operator with this email already exists", nil)}
	svc := NewService(&fakeJWTService{}, repo, time.Hour)

	_, err := svc.Register(context.Background(), "Op", "op@example.com", "longenough")
	if !domain.IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}
}
