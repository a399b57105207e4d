// Package testutils provides testing utilities for the signup API.
//
// This package contains helpers for:
//  1. Setting up test servers for API testing
//  2. Executing JSON requests against them
//  3. Asserting error and success response bodies
//  4. Checking that client-facing errors do not leak internal details
//
// Example:
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/api/signup", `{}`)
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Missing param: name")
package testutils
