package entities

import (
	"errors"
	"fmt"
)

// Базовые категории ошибок. Конкретные ошибки ниже оборачивают одну из них,
// поэтому вызывающему коду достаточно errors.Is с категорией.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrPersistence           = errors.New("persistence error")
	ErrPreconditionViolation = errors.New("precondition violation")
)

var (
	ErrShopperNotFound = fmt.Errorf("shopper %w", ErrNotFound)
	ErrBasketNotFound  = fmt.Errorf("basket %w", ErrNotFound)
	ErrLineNotFound    = fmt.Errorf("basket line %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrOfferNotFound   = fmt.Errorf("offer %w", ErrNotFound)

	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	ErrInvalidID       = fmt.Errorf("%w: malformed identifier", ErrInvalidInput)

	ErrEmptyBasket   = fmt.Errorf("%w: basket is empty", ErrPreconditionViolation)
	ErrDuplicateLine = fmt.Errorf("%w: product already in basket", ErrPreconditionViolation)
	ErrBasketOrdered = fmt.Errorf("%w: basket already ordered", ErrPreconditionViolation)
)

// Classified reports whether err already belongs to one of the error categories.
func Classified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrPreconditionViolation)
}

// AsPersistence помечает необработанные ошибки хранилища как ErrPersistence.
func AsPersistence(err error) error {
	if err == nil || Classified(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
