package application

import "errors"

// Domain failures surfaced to the HTTP boundary. The translator in the
// interface layer maps each one to a fixed status and user-safe message;
// nothing else about the failure leaves the process.
var (
	ErrUserNotFound      = errors.New("account not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")
	ErrProductNotFound   = errors.New("product not found")
)
