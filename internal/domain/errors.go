package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates an operation that requires a logged-in
	// session was attempted anonymously.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart indicates checkout was attempted with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrForbidden indicates the client-side admin gate rejected the action.
	ErrForbidden = errors.New("admin access only")
)
