package importer

// Config holds configuration for spreadsheet imports.
type Config struct {
	// Strict rejects rows that match no schema column.
	Strict bool `mapstructure:"strict" default:"true"`
	// TwoDigitYearPivot is how many years into the future a two-digit year may resolve to.
	TwoDigitYearPivot int `mapstructure:"two_digit_year_pivot" default:"20"`
	// MaxUploadMB caps the size of uploaded files.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"10"`
}

// Options returns the Normalize options for this configuration.
func (c Config) Options() Options {
	return Options{Strict: c.Strict, TwoDigitYearPivot: c.TwoDigitYearPivot}
}
