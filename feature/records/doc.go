// Package records implements the spreadsheet import and reconciliation feature.
//
// Uploaded rows are mapped onto a registered schema, validated, and diffed against the
// records already held in the database. Nothing is written until a client applies an import
// with confirmed set, so the same rows can be reviewed through the diff endpoint first.
//
// # Components
//
//   - Service: Normalizes imports, diffs and applies them through core/reconcile, exports
//     stored records through core/fileio and object storage.
//   - Handler: Exposes HTTP endpoints and maps errors onto status codes.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /schemas : List registered schemas.
//   - GET /records/:baseName : List stored records.
//   - POST /records/:baseName/import : Normalize JSON rows.
//   - POST /records/:baseName/upload : Normalize an uploaded .json, .csv or .xlsx file.
//   - POST /records/:baseName/import-object : Normalize a file held in object storage.
//   - POST /records/:baseName/diff : Classify rows as new, duplicate or modified.
//   - POST /records/:baseName/apply : Write new and modified records (supports dryRun, confirmed, purge).
//   - GET /records/:baseName/export : Download stored records (?format=csv|json|xlsx).
//   - POST /records/:baseName/export : Upload an export to object storage.
//   - GET /records/:baseName/exports : List uploaded exports.
//
// Validation failures return 422 with every violation, unknown schemas 404.
package records
