// Package emailvalidator provides the production email syntax checker used by
// the signup handler. It wraps the "email" rule of go-playground/validator so
// the handler depends only on a one-method interface.
package emailvalidator
