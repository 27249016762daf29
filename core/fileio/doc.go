// Package fileio reads and writes record batches as JSON, CSV or XLSX.
//
// Decode produces raw rows keyed by the file's own headers, ready for importer.Normalize.
// Encode writes canonical records through the export package.
//
// # Formats
//
//   - json: an array of objects. Numbers are kept as json.Number so large identifiers
//     survive the round trip.
//   - csv: the first row is the header. Short rows leave trailing columns unset and blank
//     rows are skipped.
//   - xlsx: the first sheet is read like a CSV file. Encode writes one sheet named after
//     the schema.
package fileio
