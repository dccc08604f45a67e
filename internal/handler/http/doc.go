// Package http implements the HTTP transport layer of the vault server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, rate limiting, request
// tracing, access logging, security headers and compression are handled in
// this package before requests are delegated to the service layer.
//
// Every failed request is answered with {"error": message} where message is
// one of the constants of package app.
package http
