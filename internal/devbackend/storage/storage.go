// Package storage модели и интерфейсы хранилища dev backend.
package storage

import (
	"context"
	"time"
)

// User пользователь backend
type User struct {
	CreatedAt    time.Time
	Email        string
	PasswordHash string
	FullName     string
	CompanyName  string
	AITone       string
	ID           int64
}

// Product товар пользователя
type Product struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Price       float64
	ID          int64
	UserID      int64
}

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user and sets user.ID.
	// Returns ErrUserAlreadyExists if email is taken
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail retrieves user by email.
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves user by ID.
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*User, error)

	// UpdateProfile updates full name, company and AI tone.
	// Returns ErrUserNotFound if user doesn't exist
	UpdateProfile(ctx context.Context, user *User) error
}

// ProductStorage defines interface for product persistence.
// Every operation is scoped to the owner.
type ProductStorage interface {
	// ListProducts returns products of the user ordered by ID
	ListProducts(ctx context.Context, userID int64) ([]Product, error)

	// CreateProduct inserts product and sets ID and timestamps
	CreateProduct(ctx context.Context, product *Product) error

	// UpdateProduct updates name, description and price.
	// Returns ErrProductNotFound if product doesn't exist for product.UserID
	UpdateProduct(ctx context.Context, product *Product) error

	// DeleteProduct deletes product of the user.
	// Returns ErrProductNotFound if product doesn't exist for userID
	DeleteProduct(ctx context.Context, userID, productID int64) error
}
