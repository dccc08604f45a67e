// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

// Messages of successful responses.
const (
	MsgServerRunning         = "API server is running"
	MsgRegistrationSucceeded = "Registration successful!"
	MsgLoginSucceeded        = "Login successful!"
	MsgCredentialCreated     = "Password added successfully"
	MsgCredentialUpdated     = "Password updated successfully"
	MsgCredentialDeleted     = "Password deleted successfully"
)

// Messages of failed responses, sent as {"error": message}.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgRegisterFieldsRequired is returned when a registration request
	// lacks the username, the email or the password.
	MsgRegisterFieldsRequired = "Username, email address, and password are all required fields."

	// MsgInvalidEmail is returned for a syntactically invalid email address.
	MsgInvalidEmail = "Invalid email address"

	// MsgUserAlreadyExists is returned when the username or the email is
	// already taken.
	MsgUserAlreadyExists = "The username or email address is already in use."

	// MsgLoginFieldsRequired is returned when a login request lacks the email
	// or the password.
	MsgLoginFieldsRequired = "Email address and password are both required fields."

	// MsgInvalidEmailOrPassword is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidEmailOrPassword = "Invalid email address or password"

	// MsgLoginRequired is returned when a protected route is called without
	// a bearer token.
	MsgLoginRequired = "Login is required to access."

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Token is invalid or has expired."

	// MsgCredentialFieldsRequired is returned when a record lacks the site
	// name or the encrypted password.
	MsgCredentialFieldsRequired = "Site name and password cannot be null"

	// MsgFieldTooLong is returned when a field exceeds its column size.
	MsgFieldTooLong = "One of the fields is too long"

	// MsgCredentialNotFound is returned when a record does not exist or
	// belongs to another user.
	MsgCredentialNotFound = "Password entry does not exist or lacks access permission."

	// MsgTooManyAuthRequests is returned when an IP exceeds the register and
	// login budget.
	MsgTooManyAuthRequests = "Too many login attempts from this IP, please try again after 15 minutes"

	// MsgTooManyRequests is returned when an IP exceeds the API budget.
	MsgTooManyRequests = "Too many requests from this IP, please try again after 15 minutes"

	// MsgRequestTooLarge is returned when a request body, after
	// decompression, exceeds the accepted size.
	MsgRequestTooLarge = "Request entity too large"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Server error, please try again later"
)
