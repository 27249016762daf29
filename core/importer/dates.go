package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the layout date columns are normalized to.
const DateLayout = "2006-01-02"

// DefaultTwoDigitYearPivot is how far into the future a two-digit year may land before it
// is moved back a century.
const DefaultTwoDigitYearPivot = 20

// ErrInvalidDate is returned for date column values that cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"Jan 2, 2006", "January 2, 2006", "2 Jan 2006",
		"20060102",
	}
	timestampLayouts = []string{
		time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05",
	}
)

// Excel serial day numbers between 1900-01-01 and 9999-12-31.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// Serials written as text, e.g. a CSV export of a date cell, are only accepted between
// 1950-01-01 and 2099-12-31. Wider, a bare year such as "2024" would pass as a 1905 date.
const (
	minTextSerial = 18264
	maxTextSerial = 73050
)

type dateParser struct {
	pivot int
	now   func() time.Time
}

func newDateParser(pivot int) *dateParser {
	if pivot <= 0 {
		pivot = DefaultTwoDigitYearPivot
	}
	return &dateParser{pivot: pivot, now: time.Now}
}

// Parse converts a date cell to DateLayout.
func (p *dateParser) Parse(val any) (string, error) {
	switch v := val.(type) {
	case time.Time:
		return v.Format(DateLayout), nil
	case float64:
		return p.serial(v)
	case float32:
		return p.serial(float64(v))
	case int:
		return p.serial(float64(v))
	case int64:
		return p.serial(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, v.String())
		}
		return p.serial(f)
	case string:
		return p.text(v)
	default:
		return "", fmt.Errorf("%w: unsupported value %v", ErrInvalidDate, v)
	}
}

func (p *dateParser) serial(f float64) (string, error) {
	if f < minExcelSerial || f > maxExcelSerial {
		return "", fmt.Errorf("%w: serial %v out of range", ErrInvalidDate, f)
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t.Format(DateLayout), nil
}

func (p *dateParser) text(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}

	pivotYear := p.now().Year() + p.pivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t.Format(DateLayout), nil
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= minTextSerial && f <= maxTextSerial {
		return p.serial(f)
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
