// Package server holds the HTTP server configuration used by the serve
// command: listen port, optional API key and the record cache TTL.
package server
