// Package integrity provides health checks for the roster manager's storage and records.
//
// # Checks Provided
//
//   - Structure: Checks that the storage bucket has an export folder (exports/<baseName>/) for every schema.
//   - Database: Validates that the record table exists and has every column of the record model.
//   - Records: Re-validates stored records against their schema and reports repeated primary keys.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks and reports whether the deployment is healthy.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/database : Runs database check.
//   - GET /integrity/records : Runs stored records check.
package integrity
