package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brainwise/posnext-api/internal/domain/entity"
	"github.com/brainwise/posnext-api/pkg/apperror"
	"github.com/brainwise/posnext-api/pkg/oauth"
	"github.com/brainwise/posnext-api/pkg/utils"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[uuid.UUID]*entity.User{},
	}
}

func (m *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return nil
}

func (m *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.byID[id], nil
}

func (m *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return nil
}

func (m *stubUserRepo) GetLanguage(ctx context.Context, id uuid.UUID) (string, error) {
	user := m.byID[id]
	if user == nil {
		return "", nil
	}
	return user.Language, nil
}

func newAuthTestService() (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthTestService()

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
		Language:  "PT",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Language != "pt" {
		t.Errorf("language = %s, want pt (lower-cased)", user.Language)
	}
	if user.Password == "super-secret-1" {
		t.Error("password must be stored hashed")
	}

	output, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@example.com",
		Password: "super-secret-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected both tokens on login")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService()

	input := &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
	}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if err == nil {
		t.Fatal("expected conflict on duplicate email")
	}
	if code := apperror.GetAppError(err).Code; code != 409 {
		t.Errorf("error code = %d, want 409", code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthTestService()

	if _, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, apperror.ErrInvalidCredentials)
	}

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, apperror.ErrInvalidCredentials)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	svc, repo := newAuthTestService()

	if _, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	repo.byEmail["ana@example.com"].Enabled = false

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@example.com",
		Password: "super-secret-1",
	})
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("Login() error = %v, want %v", err, apperror.ErrForbidden)
	}
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc, _ := newAuthTestService()

	if _, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@example.com",
		Password: "super-secret-1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("expected new token pair")
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("RefreshToken() error = %v, want %v", err, apperror.ErrInvalidToken)
	}
}

func TestLoginWithGoogleCreatesUser(t *testing.T) {
	svc, repo := newAuthTestService()

	output, err := svc.LoginWithGoogle(context.Background(), &oauth.GoogleUserInfo{
		ID:            "google-123",
		Email:         "ana@example.com",
		VerifiedEmail: true,
		GivenName:     "Ana",
		FamilyName:    "Silva",
	})
	if err != nil {
		t.Fatalf("LoginWithGoogle() error = %v", err)
	}

	created := repo.byEmail["ana@example.com"]
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if created.Provider != "google" || created.ProviderID == nil || *created.ProviderID != "google-123" {
		t.Errorf("provider link = %s/%v", created.Provider, created.ProviderID)
	}
	if output.AccessToken == "" {
		t.Error("expected access token")
	}
}

func TestLoginWithGoogleRejectsUnverifiedEmail(t *testing.T) {
	svc, _ := newAuthTestService()

	_, err := svc.LoginWithGoogle(context.Background(), &oauth.GoogleUserInfo{
		ID:            "google-123",
		Email:         "ana@example.com",
		VerifiedEmail: false,
	})
	if err == nil {
		t.Fatal("expected error for unverified Google email")
	}
}

func TestUpdateProfileChangesLanguage(t *testing.T) {
	svc, repo := newAuthTestService()

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "super-secret-1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:   user.ID,
		Language: "FR",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Language != "fr" {
		t.Errorf("language = %s, want fr", updated.Language)
	}
	if updated.FirstName != "Ana" {
		t.Error("blank fields must not overwrite existing values")
	}
	if repo.byID[user.ID].Language != "fr" {
		t.Error("update must be persisted")
	}
}
