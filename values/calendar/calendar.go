// Package calendar implements calendar dates with explicit precision and era,
// and their conversion to and from Julian Day Numbers.
//
// The JDN is the canonical, comparison-stable representation of a date: the
// human-readable calendar date is always derived from it on demand, never
// stored alongside it. Conversions are exact inverses for every supported
// calendar and precision.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Name identifies a calendar system.
type Name string

const (
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian Name = "GREGORIAN"
	// Julian is the Julian calendar.
	Julian Name = "JULIAN"
	// Islamic is the tabular (civil) Islamic calendar.
	Islamic Name = "ISLAMIC"
)

// ParseName parses a calendar name, case-insensitively.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToUpper(s)) {
	case Gregorian:
		return Gregorian, nil
	case Julian:
		return Julian, nil
	case Islamic:
		return Islamic, nil
	default:
		return "", fmt.Errorf("unsupported calendar %q", s)
	}
}

// RequiresEra reports whether dates in this calendar must carry an era.
func (n Name) RequiresEra() bool {
	return n == Gregorian || n == Julian
}

// Precision is the precision of a calendar date.
type Precision int

const (
	// PrecisionYear means only the year is known.
	PrecisionYear Precision = iota
	// PrecisionMonth means year and month are known.
	PrecisionMonth
	// PrecisionDay means the full date is known.
	PrecisionDay
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "YEAR"
	case PrecisionMonth:
		return "MONTH"
	case PrecisionDay:
		return "DAY"
	default:
		return "UNKNOWN"
	}
}

// Era distinguishes years before and after the epoch in era calendars.
type Era int

const (
	// EraNone is used by calendars without eras.
	EraNone Era = iota
	// EraCE is the common era.
	EraCE
	// EraBCE is before the common era.
	EraBCE
)

func (e Era) String() string {
	switch e {
	case EraCE:
		return "CE"
	case EraBCE:
		return "BCE"
	default:
		return ""
	}
}

// ParseEra parses an era tag. AD and BC are accepted as synonyms of CE and
// BCE.
func ParseEra(s string) (Era, error) {
	switch strings.ToUpper(s) {
	case "CE", "AD":
		return EraCE, nil
	case "BCE", "BC":
		return EraBCE, nil
	default:
		return EraNone, fmt.Errorf("invalid era %q", s)
	}
}

// Date is a calendar date with explicit precision: Month and Day are zero when
// the precision leaves them unspecified. Year is counted within the era (year
// 1 BCE is the year before year 1 CE; there is no year zero in era calendars).
type Date struct {
	Calendar Name
	Year     int
	Month    int
	Day      int
	Era      Era
}

// Precision derives the date's precision from which fields are set.
func (d Date) Precision() Precision {
	switch {
	case d.Day != 0:
		return PrecisionDay
	case d.Month != 0:
		return PrecisionMonth
	default:
		return PrecisionYear
	}
}

// Validate checks the date's internal consistency: a day requires a month,
// months and days must be in range, era calendars require an era, and the
// Islamic calendar rejects one.
func (d Date) Validate() error {
	if _, err := ParseName(string(d.Calendar)); err != nil {
		return err
	}
	if d.Day != 0 && d.Month == 0 {
		return fmt.Errorf("invalid date %q: a day cannot be given without a month", d.String())
	}
	if d.Month < 0 || d.Month > 12 {
		return fmt.Errorf("invalid date %q: month out of range", d.String())
	}
	if d.Year < 1 {
		return fmt.Errorf("invalid date %q: year must be positive", d.String())
	}
	if d.Calendar.RequiresEra() && d.Era == EraNone {
		return fmt.Errorf("invalid date %q: calendar %s requires an era", d.String(), d.Calendar)
	}
	if !d.Calendar.RequiresEra() && d.Era != EraNone {
		return fmt.Errorf("invalid date %q: calendar %s does not use eras", d.String(), d.Calendar)
	}
	if d.Day != 0 {
		// Round-trip through the JDN to catch out-of-range days such as
		// February 30.
		jdn := dayToJDN(d.Calendar, d.astronomicalYear(), d.Month, d.Day)
		y, m, day := jdnToDay(d.Calendar, jdn)
		if y != d.astronomicalYear() || m != d.Month || day != d.Day {
			return fmt.Errorf("invalid date %q: no such day in calendar %s", d.String(), d.Calendar)
		}
	}
	return nil
}

// astronomicalYear converts the era year to a continuous year count where
// 1 BCE is year 0.
func (d Date) astronomicalYear() int {
	if d.Era == EraBCE {
		return 1 - d.Year
	}
	return d.Year
}

// String renders the date at its own precision, with the era appended for era
// calendars, e.g. "2017-01-27 CE".
func (d Date) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%04d", d.Year)
	if d.Month != 0 {
		fmt.Fprintf(&sb, "-%02d", d.Month)
	}
	if d.Day != 0 {
		fmt.Fprintf(&sb, "-%02d", d.Day)
	}
	if d.Era != EraNone {
		sb.WriteByte(' ')
		sb.WriteString(d.Era.String())
	}
	return sb.String()
}

// StartJDN returns the JDN of the first day of the period the date denotes
// (January 1 for year precision, the first of the month for month precision).
func (d Date) StartJDN() (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return dayToJDN(d.Calendar, d.astronomicalYear(), month, day), nil
}

// EndJDN returns the JDN of the last day of the period the date denotes.
func (d Date) EndJDN() (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	year := d.astronomicalYear()
	switch d.Precision() {
	case PrecisionDay:
		return dayToJDN(d.Calendar, year, d.Month, d.Day), nil
	case PrecisionMonth:
		nextYear, nextMonth := year, d.Month+1
		if nextMonth > 12 {
			nextYear, nextMonth = year+1, 1
		}
		return dayToJDN(d.Calendar, nextYear, nextMonth, 1) - 1, nil
	default:
		return dayToJDN(d.Calendar, year+1, 1, 1) - 1, nil
	}
}

// FromJDN converts a JDN back to a calendar date at the given precision. This
// is the exact inverse of StartJDN for period-start JDNs at every precision,
// and of any day-precision conversion.
func FromJDN(cal Name, jdn int, precision Precision) (Date, error) {
	if _, err := ParseName(string(cal)); err != nil {
		return Date{}, err
	}
	y, m, day := jdnToDay(cal, jdn)
	d := Date{Calendar: cal, Year: y, Month: m, Day: day}
	if cal.RequiresEra() {
		if y <= 0 {
			d.Era = EraBCE
			d.Year = 1 - y
		} else {
			d.Era = EraCE
		}
	}
	switch precision {
	case PrecisionYear:
		d.Month, d.Day = 0, 0
	case PrecisionMonth:
		d.Day = 0
	}
	return d, nil
}

// ParseDate parses a single date of the form "YYYY[-MM[-DD]][ ERA]" in the
// given calendar.
func ParseDate(cal Name, s string) (Date, error) {
	trimmed := strings.TrimSpace(s)
	d := Date{Calendar: cal}
	if idx := strings.IndexByte(trimmed, ' '); idx >= 0 {
		era, err := ParseEra(trimmed[idx+1:])
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %v", s, err)
		}
		d.Era = era
		trimmed = trimmed[:idx]
	}
	parts := strings.Split(trimmed, "-")
	if len(parts) > 3 {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	fields := []*int{&d.Year, &d.Month, &d.Day}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		*fields[i] = n
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// ParseDateRange parses the compact range form "CALENDAR:start[:end]", e.g.
// "GREGORIAN:2017-01-27 CE:2017-02-01 CE". A missing end date means the range
// covers exactly the start period.
func ParseDateRange(s string) (start, end Date, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Date{}, Date{}, fmt.Errorf("invalid date range %q", s)
	}
	cal, err := ParseName(parts[0])
	if err != nil {
		return Date{}, Date{}, fmt.Errorf("invalid date range %q: %v", s, err)
	}
	start, err = ParseDate(cal, parts[1])
	if err != nil {
		return Date{}, Date{}, err
	}
	end = start
	if len(parts) == 3 {
		end, err = ParseDate(cal, parts[2])
		if err != nil {
			return Date{}, Date{}, err
		}
	}
	return start, end, nil
}

// RangeString renders a start/end pair in the compact range form, omitting the
// end when it equals the start.
func RangeString(start, end Date) string {
	if start == end {
		return string(start.Calendar) + ":" + start.String()
	}
	return string(start.Calendar) + ":" + start.String() + ":" + end.String()
}

// dayToJDN converts an astronomical year/month/day to a JDN. The Gregorian and
// Julian conversions are the Fliegel–Van Flandern algorithms; the Islamic
// conversion uses the tabular civil calendar. All divisions truncate toward
// zero, as the algorithms require.
func dayToJDN(cal Name, y, m, d int) int {
	switch cal {
	case Julian:
		return 367*y - (7*(y+5001+(m-9)/7))/4 + (275*m)/9 + d + 1729777
	case Islamic:
		return (11*y+3)/30 + 354*y + 30*m - (m-1)/2 + d + 1948440 - 385
	default: // Gregorian
		return (1461*(y+4800+(m-14)/12))/4 +
			(367*(m-2-12*((m-14)/12)))/12 -
			(3*((y+4900+(m-14)/12)/100))/4 +
			d - 32075
	}
}

// jdnToDay converts a JDN to an astronomical year/month/day.
func jdnToDay(cal Name, jdn int) (year, month, day int) {
	switch cal {
	case Julian:
		j := jdn + 1402
		k := (j - 1) / 1461
		l := j - 1461*k
		n := (l-1)/365 - l/1461
		i := l - 365*n + 30
		jj := (80 * i) / 2447
		day = i - (2447*jj)/80
		i = jj / 11
		month = jj + 2 - 12*i
		year = 4*k + n + i - 4716
		return year, month, day
	case Islamic:
		l := jdn - 1948440 + 10632
		n := (l - 1) / 10631
		l = l - 10631*n + 354
		j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
		l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
		month = (24 * l) / 709
		day = l - (709*month)/24
		year = 30*n + j - 30
		return year, month, day
	default: // Gregorian
		l := jdn + 68569
		n := (4 * l) / 146097
		l = l - (146097*n+3)/4
		i := (4000 * (l + 1)) / 1461001
		l = l - (1461*i)/4 + 31
		j := (80 * l) / 2447
		day = l - (2447*j)/80
		l = j / 11
		month = j + 2 - 12*l
		year = 100*(n-49) + i + l
		return year, month, day
	}
}
