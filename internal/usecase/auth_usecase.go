package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/furnishfusion/storefront/internal/domain/constants"
	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
)

// AuthUseCase handles customer and admin authentication plus the
// post-login dashboard summary.
type AuthUseCase struct {
	users    repository.UserRepository
	admins   repository.AdminRepository
	orders   repository.OrderRepository
	contact  repository.ContactRepository
	sessions *storage.SessionStore
}

func NewAuthUseCase(
	users repository.UserRepository,
	admins repository.AdminRepository,
	orders repository.OrderRepository,
	contact repository.ContactRepository,
	sessions *storage.SessionStore,
) *AuthUseCase {
	return &AuthUseCase{users: users, admins: admins, orders: orders, contact: contact, sessions: sessions}
}

// Register creates a customer account. Passwords are bcrypt-hashed;
// the store never sees plaintext.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if len(password) < constants.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, constants.MinPasswordLength)
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = uc.users.Create(ctx, entity.User{Name: name, Email: email, PasswordHash: string(hash)})
	return err
}

// Login verifies credentials and binds the user to the session.
func (uc *AuthUseCase) Login(ctx context.Context, sess *entity.Session, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	uc.sessions.Update(sess.Token, func(s *entity.Session) {
		s.UserID = user.ID
		s.UserName = user.Name
		s.UserEmail = user.Email
	})
	return user, nil
}

// AdminLogin verifies back-office credentials and binds the admin to
// the session.
func (uc *AuthUseCase) AdminLogin(ctx context.Context, sess *entity.Session, username, password string) (*entity.Admin, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, err := uc.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	uc.sessions.Update(sess.Token, func(s *entity.Session) {
		s.AdminID = admin.ID
		s.AdminUsername = admin.Username
	})
	return admin, nil
}

// Logout drops the whole session, cart included.
func (uc *AuthUseCase) Logout(sess *entity.Session) {
	if sess != nil {
		uc.sessions.Delete(sess.Token)
	}
}

// Dashboard assembles the customer's account summary.
func (uc *AuthUseCase) Dashboard(ctx context.Context, userID int64) (*entity.UserDashboard, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	count, err := uc.orders.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := uc.orders.RecentByUser(ctx, userID, 5)
	if err != nil {
		return nil, err
	}
	spent, err := uc.orders.TotalSpentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := &entity.UserDashboard{
		User:         *user,
		OrderCount:   count,
		RecentOrders: recent,
		TotalSpent:   spent,
	}
	if info, err := uc.contact.GetContact(ctx); err == nil && info != nil {
		dash.ContactInfo = *info
	}
	return dash, nil
}
