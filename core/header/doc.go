// Package header resolves spreadsheet column headers onto canonical schema keys.
//
// Resolution is tried in order of confidence and the first hit wins:
//
//  1. Exact: the header equals a canonical key.
//  2. Alias: the header equals an alias from the schema's key map.
//  3. Normalized: Normalize(header) equals the normalized form of a key or alias.
//  4. Fuzzy: the edit distance between normalized forms is within MaxDistance.
//
// Headers that resolve under no rule are reported as unmatched. Precision is favoured
// over recall: a short or dissimilar header ("name") is never guessed onto a longer key
// ("first_name").
package header
