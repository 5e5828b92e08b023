// Package common contains constants and sentinel errors shared by the
// user service and its CLI client.
package common

// AuthHeaderName is the HTTP header carrying the bearer access token.
const AuthHeaderName = "Authorization"

// LegacyAuthHeaderName is an alternative header that carries a bare token.
const LegacyAuthHeaderName = "jwt"

// BearerPrefix precedes the token in AuthHeaderName.
const BearerPrefix = "Bearer "

// MaskedPassword replaces the password hash in every user view that leaves
// the server.
const MaskedPassword = "********"
