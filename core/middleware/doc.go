// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: Validates the static API key on every protected route.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - requestlog: Logs method, path, status and duration of every request at a level
//     chosen by the outcome.
//
// RayID must be registered first so that request logs and authentication failures are
// traceable too.
package middleware
