package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"DentalDesk/database"
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/session"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	}
	return nil
}

func (m *memoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newTestUserService(t *testing.T) (UserService, *session.Store) {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sessions := session.NewStore(newMemoryKV())
	return NewUserService(repositories.NewUserRepository(store), sessions, nil, nil), sessions
}

func registerUser(t *testing.T, svc UserService, username, password string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		Role:      models.RoleReceptionist,
		FirstName: "Sofia",
		LastName:  "Dimitriou",
	}
	if err := svc.ValidateAndCreateUser(context.Background(), user, password); err != nil {
		t.Fatalf("ValidateAndCreateUser: %v", err)
	}
	return user
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user := registerUser(t, svc, "frontdesk", "Str0ng!pass")
	if user.PasswordHash == "Str0ng!pass" || user.PasswordHash == "" {
		t.Fatal("password must be stored as a hash, never in clear")
	}
	if !user.IsActive {
		t.Fatal("new accounts start active")
	}

	if err := svc.ValidateAndCreateUser(ctx, &models.User{
		Username:  "frontdesk",
		Email:     "other@example.com",
		Role:      models.RoleReceptionist,
		FirstName: "A",
		LastName:  "B",
	}, "Str0ng!pass"); err == nil {
		t.Fatal("duplicate username must be rejected")
	}
}

func TestCreateUserRejectsWeakPasswords(t *testing.T) {
	svc, _ := newTestUserService(t)

	for i, password := range []string{"short1!", "alllowercase1!", "NoDigits!", "NoSpecial1"} {
		err := svc.ValidateAndCreateUser(context.Background(), &models.User{
			Username:  fmt.Sprintf("weakuser%d", i),
			Email:     fmt.Sprintf("weak%d@example.com", i),
			Role:      models.RoleAssistant,
			FirstName: "A",
			LastName:  "B",
		}, password)
		if err == nil {
			t.Errorf("password %q should be rejected", password)
		}
	}
}

func TestAuthenticateUserGenericFailure(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	registerUser(t, svc, "frontdesk", "Str0ng!pass")

	// Unknown username and wrong password must be indistinguishable.
	_, unknownErr := svc.AuthenticateUser(ctx, "nobody", "Str0ng!pass")
	_, wrongErr := svc.AuthenticateUser(ctx, "frontdesk", "Wr0ng!pass")

	if unknownErr != ErrInvalidCredentials {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if wrongErr != ErrInvalidCredentials {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Error("login failures must not reveal which check failed")
	}
}

func TestAuthenticateUserPersistsSession(t *testing.T) {
	svc, sessions := newTestUserService(t)
	ctx := context.Background()

	registerUser(t, svc, "frontdesk", "Str0ng!pass")

	user, err := svc.AuthenticateUser(ctx, "frontdesk", "Str0ng!pass")
	if err != nil {
		t.Fatalf("AuthenticateUser: %v", err)
	}
	if user.LastLogin == nil {
		current, err := svc.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID: %v", err)
		}
		if current.LastLogin == nil {
			t.Error("last_login must be stamped on login")
		}
	}

	persisted, err := sessions.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !persisted.IsAuthenticated || persisted.User == nil || persisted.User.Username != "frontdesk" {
		t.Fatalf("session not persisted: %+v", persisted)
	}
	if persisted.User.PasswordHash != "" {
		t.Fatal("session snapshot must not carry the password hash")
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	cleared, err := svc.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if cleared.IsAuthenticated {
		t.Fatal("session must be cleared on logout")
	}
}

func TestChangePasswordRequiresOldOne(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user := registerUser(t, svc, "frontdesk", "Str0ng!pass")

	if err := svc.ChangePassword(ctx, user.ID, "Wr0ng!pass", "N3w!passwd"); err == nil {
		t.Fatal("wrong current password must be rejected")
	}

	if err := svc.ChangePassword(ctx, user.ID, "Str0ng!pass", "N3w!passwd"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.AuthenticateUser(ctx, "frontdesk", "Str0ng!pass"); err != ErrInvalidCredentials {
		t.Error("old password must stop working")
	}
	if _, err := svc.AuthenticateUser(ctx, "frontdesk", "N3w!passwd"); err != nil {
		t.Errorf("new password must work: %v", err)
	}
}
