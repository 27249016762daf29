// Package store persists canonical records with GORM.
//
// Records of every schema share one table. A row is identified by the schema base name
// and the record's stringified primary key; the record itself is stored as a JSON
// document, so adding a schema needs no migration.
//
// Store implements reconcile.Loader and reconcile.Mutator (including the batch
// extensions), so reconciliation plans can be applied to it directly.
package store
