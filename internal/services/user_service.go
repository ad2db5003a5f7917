package services

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/mbelda/fridgechef-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentialsMsg is shared by the unknown-email and wrong-password
// paths so a caller cannot tell which one failed.
const invalidCredentialsMsg = "invalid credentials"

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user with a bcrypt-hashed password and returns its
// public identity. The raw password is never stored.
func (s *UserService) Register(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, apperror.NewValidation("email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperror.NewInternal(err)
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
	}

	_, err = s.db.Exec("INSERT INTO users(id, email, password_hash) VALUES(?, ?, ?)",
		user.ID, user.Email, string(hashedPassword))
	if err != nil {
		// The UNIQUE constraint on email is the single authority on
		// duplicates, so concurrent registrations cannot race past it.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, apperror.NewConflict("email is already registered")
		}
		return models.User{}, apperror.NewInternal(err)
	}

	return s.GetUserByID(user.ID)
}

// Authenticate verifies a user's credentials and returns the matching user.
// Unknown email and wrong password fail identically.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperror.NewAuth(invalidCredentialsMsg)
		}
		return models.User{}, apperror.NewInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, apperror.NewAuth(invalidCredentialsMsg)
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperror.NewNotFound("user not found")
		}
		return models.User{}, apperror.NewInternal(err)
	}
	return user, nil
}
