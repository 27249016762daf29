// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the request body limit that
// bounds spreadsheet uploads.
package server
