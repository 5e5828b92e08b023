// Package client is the HTTP transport the CLI uses to talk to the user
// service. Client describes the calls; HTTPClient implements them over
// JSON.
//
// Non-2xx replies come back as *APIError. Use errors.Is with
// ErrUnauthorized or ErrUnavailable to test for the common cases.
package client
