package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadySubscribed is returned when a newsletter email is already on file.
	ErrAlreadySubscribed = errors.New("already subscribed")
	// ErrInvalidQuantity rejects cart quantities below the allowed minimum.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidSize rejects size tags outside the known bottle sizes.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidInput marks request input rejected before any store call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart is returned when checking out a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")
)
