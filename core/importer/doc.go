// Package importer normalizes a batch of raw spreadsheet rows into canonical records.
//
// Normalize is the single entry point. It builds one RowMapper per call, maps every row in
// input order, rewrites date columns to ISO dates and validates the result. The batch is
// all-or-nothing: any problem yields a *validate.ValidationError listing every violation and
// no records.
//
// # Dates
//
// Values in a schema's date columns are accepted as time.Time, Excel serial numbers or
// strings in common layouts ("2006-01-02", "1/2/2006", "Jan 2, 2006", ...). Two-digit years
// are resolved with a pivot: a year more than Options.TwoDigitYearPivot years in the future
// is moved to the previous century.
package importer
