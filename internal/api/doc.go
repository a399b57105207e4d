// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the signup pipeline, translating HTTP concerns to plain values.
package api
