package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
)

func authFixture(t *testing.T) (*AuthUseCase, *storage.SessionStore, *entity.Session) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	admins := &stubAdminRepo{admins: map[string]entity.Admin{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash)},
	}}
	sessions := storage.NewSessionStore()
	sess := sessions.Create()
	uc := NewAuthUseCase(newStubUserRepo(), admins, newStubOrderRepo(), &stubContactRepo{}, sessions)
	return uc, sessions, sess
}

func TestRegisterAndLogin(t *testing.T) {
	uc, sessions, sess := authFixture(t)
	ctx := context.Background()

	if err := uc.Register(ctx, "Asha", "asha@example.com", "secret99"); err != nil {
		t.Fatal(err)
	}

	// Duplicate email.
	if err := uc.Register(ctx, "Asha", "asha@example.com", "secret99"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate register err = %v, want ErrConflict", err)
	}

	user, err := uc.Login(ctx, sess, "asha@example.com", "secret99")
	if err != nil {
		t.Fatal(err)
	}
	if user.Name != "Asha" {
		t.Errorf("user name = %q", user.Name)
	}

	bound, ok := sessions.Get(sess.Token)
	if !ok || !bound.IsUser() {
		t.Fatal("login did not bind the user to the session")
	}
	if bound.UserEmail != "asha@example.com" {
		t.Errorf("session email = %q", bound.UserEmail)
	}

	// Wrong password.
	if _, err := uc.Login(ctx, sess, "asha@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password err = %v, want ErrUnauthorized", err)
	}
	// Unknown email gets the same error, not a different one.
	if _, err := uc.Login(ctx, sess, "nobody@example.com", "secret99"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown email err = %v, want ErrUnauthorized", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := authFixture(t)
	ctx := context.Background()

	cases := []struct{ name, email, password string }{
		{"", "a@b.c", "secret99"},
		{"A", "", "secret99"},
		{"A", "a@b.c", ""},
		{"A", "a@b.c", "short"},
	}
	for _, c := range cases {
		if err := uc.Register(ctx, c.name, c.email, c.password); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Register(%q, %q, %q) err = %v, want ErrInvalidInput", c.name, c.email, c.password, err)
		}
	}
}

func TestAdminLogin(t *testing.T) {
	uc, sessions, sess := authFixture(t)
	ctx := context.Background()

	admin, err := uc.AdminLogin(ctx, sess, "admin", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	if admin.Username != "admin" {
		t.Errorf("admin username = %q", admin.Username)
	}

	bound, _ := sessions.Get(sess.Token)
	if !bound.IsAdmin() {
		t.Fatal("admin login did not bind the session")
	}

	if _, err := uc.AdminLogin(ctx, sess, "admin", "nope"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bad admin password err = %v, want ErrUnauthorized", err)
	}
}

func TestLogoutDropsSession(t *testing.T) {
	uc, sessions, sess := authFixture(t)
	ctx := context.Background()

	if err := uc.Register(ctx, "Asha", "asha@example.com", "secret99"); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Login(ctx, sess, "asha@example.com", "secret99"); err != nil {
		t.Fatal(err)
	}

	uc.Logout(sess)
	if _, ok := sessions.Get(sess.Token); ok {
		t.Error("session survived logout")
	}
}

func TestDashboard(t *testing.T) {
	users := newStubUserRepo()
	orders := newStubOrderRepo()
	contact := &stubContactRepo{info: &entity.ContactInfo{CompanyName: "FurnishFusion"}}
	sessions := storage.NewSessionStore()
	uc := NewAuthUseCase(users, &stubAdminRepo{}, orders, contact, sessions)
	ctx := context.Background()

	userID, _ := users.Create(ctx, entity.User{Name: "Asha", Email: "asha@example.com"})
	orders.Create(ctx, entity.Order{UserID: userID, Total: 1200}, nil)
	orders.Create(ctx, entity.Order{UserID: userID, Total: 800}, nil)

	dash, err := uc.Dashboard(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if dash.OrderCount != 2 {
		t.Errorf("order count = %d, want 2", dash.OrderCount)
	}
	if dash.TotalSpent != 2000 {
		t.Errorf("total spent = %v, want 2000", dash.TotalSpent)
	}
	if dash.ContactInfo.CompanyName != "FurnishFusion" {
		t.Errorf("contact = %+v", dash.ContactInfo)
	}

	if _, err := uc.Dashboard(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v, want ErrNotFound", err)
	}
}
