package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stagepass/internal/shared/config"
	"stagepass/internal/users"
)

type fakeUserStore struct {
	byID    map[string]*users.User
	byEmail map[string]*users.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[string]*users.User),
		byEmail: make(map[string]*users.User),
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *users.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	user, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) UserExists(ctx context.Context, id string) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Marsh",
		Email:     "olivia@example.com",
		Password:  "secret123",
		Role:      "organizer",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if registered.User.Role != string(users.RoleOrganizer) {
		t.Errorf("role = %s, want %s", registered.User.Role, users.RoleOrganizer)
	}
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Error("Register did not issue a token pair")
	}

	// Stored password must be hashed
	stored, _ := store.GetUserByEmail(ctx, "olivia@example.com")
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Errorf("stored password does not verify: %v", err)
	}

	loggedIn, err := svc.Login(ctx, &LoginRequest{
		Email:    "olivia@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login user id = %s, want %s", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	req := &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
	}

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("second Register error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestRegisterDefaultsInvalidRole(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "SUPERUSER",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.User.Role != string(users.RoleUser) {
		t.Errorf("role = %s, want default %s", resp.User.Role, users.RoleUser)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(ctx, &LoginRequest{Email: "sam@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	claims, err := svc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserID != resp.User.ID {
		t.Errorf("claims user id = %s, want %s", claims.UserID, resp.User.ID)
	}
	if claims.Type != "access" {
		t.Errorf("claims type = %s, want access", claims.Type)
	}
	if claims.Issuer != "stagepass" {
		t.Errorf("claims issuer = %s, want stagepass", claims.Issuer)
	}

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(garbage) error = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// An access token must not pass as a refresh token
	if _, err := svc.RefreshToken(ctx, resp.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("RefreshToken(access token) error = %v, want ErrInvalidToken", err)
	}

	pair, err := svc.RefreshToken(ctx, resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("RefreshToken did not issue a full pair")
	}
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	err = svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ChangePassword with wrong current error = %v, want ErrInvalidCredentials", err)
	}

	err = svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	if err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginRequest{Email: "sam@example.com", Password: "newsecret"}); err != nil {
		t.Errorf("Login with new password returned error: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "sam@example.com", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with old password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserServiceAdapter(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Marsh",
		Email:     "olivia@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	adapter := NewUserServiceAdapter(store)
	userID := uuid.MustParse(resp.User.ID)

	exists, err := adapter.UserExists(ctx, userID)
	if err != nil || !exists {
		t.Errorf("UserExists = (%v, %v), want (true, nil)", exists, err)
	}

	exists, err = adapter.UserExists(ctx, uuid.New())
	if err != nil || exists {
		t.Errorf("UserExists(unknown) = (%v, %v), want (false, nil)", exists, err)
	}

	email, firstName, lastName, err := adapter.GetUserByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserByID returned error: %v", err)
	}
	if email != "olivia@example.com" || firstName != "Olivia" || lastName != "Marsh" {
		t.Errorf("GetUserByID = (%s, %s, %s)", email, firstName, lastName)
	}
}
