// Package validation проверки пользовательского ввода до обращения к серверу.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ErrInvalidInput общая ошибка проверки ввода
var ErrInvalidInput = errors.New("invalid input")

// EmailPattern упрощенный формат email: local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MaxNameLen максимальная длина имени пользователя или товара
	MaxNameLen = 200
)

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("%w: email must not exceed %d characters", ErrInvalidInput, MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("%w: email %q has invalid format", ErrInvalidInput, email)
	}

	return nil
}

// ValidatePassword проверяет, что пароль не пустой
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ValidateName проверяет имя пользователя
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, MaxNameLen)
	}
	return nil
}

// ValidateProduct проверяет поля товара: имя и описание обязательны,
// цена конечная и не отрицательная
func ValidateProduct(name, description string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrInvalidInput)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: product name must not exceed %d characters", ErrInvalidInput, MaxNameLen)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: product description cannot be empty", ErrInvalidInput)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
