// Package domain contains the error kinds shared by the signup pipeline.
// It has no dependencies on transport or infrastructure code.
package domain
