/* This file is part of the NimbusDB Go client.
 * Copyright (C) 2026 NimbusDB Inc.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package types implements the nimbus value layer: the extended-range Date
// type and the scalar codecs that convert values to and from their wire
// encoding.
package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spaolacci/murmur3"
)

// Year bounds of a finite Date. The calendar is proleptic Gregorian with no
// year 0; years run ..., -2, -1, 1, 2, ...
const (
	MinYear = -4714
	MaxYear = 5874897
)

const (
	microsPerDay int64 = 24 * 60 * 60 * 1000 * 1000

	// day number of 1970-01-01, i.e. daysForYears(1970)
	unixEpochDays = 719162
)

type dateKind int8

const (
	kindFinite dateKind = iota
	kindInfinity
	kindNegInfinity
)

// Date is an immutable calendar date: either a finite day in [MinYear,
// MaxYear] or one of the two infinity values. Finite dates store a single
// day number, the count of days since the era origin (day 0 is year 1,
// month 1, day 1; negative day numbers are dates before the era). The day
// number is meaningless when the date is not finite and is ignored by every
// operation.
//
// The zero value is the era origin. Date values are freely shareable across
// goroutines.
type Date struct {
	days int32
	kind dateKind
}

// The two infinity values. Infinity orders after every finite date,
// NegInfinity before.
var (
	Infinity    = Date{kind: kindInfinity}
	NegInfinity = Date{kind: kindNegInfinity}
)

// cumulative day counts before each month, by [leap][month]; index 12 is the
// length of the year.
var daysBeforeMonth = [2][13]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// NewDate returns the Date for the given calendar triple. It fails with
// ErrRange when year is 0 or outside [MinYear, MaxYear], month is outside
// 1-12, or day is outside the month's length for that year.
func NewDate(year, month, day int) (Date, error) {
	if year == 0 || year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("types: year %d: %w", year, ErrRange)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("types: month %d: %w", month, ErrRange)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("types: day %d of month %d, year %d: %w", day, month, year, ErrRange)
	}
	days := daysForYears(year) + daysBeforeMonth[leapIndex(year)][month-1] + day - 1
	return Date{days: int32(days)}, nil
}

// DateFromTime returns the Date holding t, truncated to a whole day in UTC.
func DateFromTime(t time.Time) Date {
	return dateFromDays(int32(floorDiv(t.Unix(), 24*60*60) + unixEpochDays))
}

// dateFromDays builds a finite Date directly from a day number. Results of
// day arithmetic come through here; the year bounds are re-checked lazily by
// whoever next derives calendar fields.
func dateFromDays(days int32) Date {
	return Date{days: days}
}

// IsLeapYear reports whether the year has 366 days. Years before year 1 are
// shifted up by one so that the 4/100/400 cycle runs unbroken across the era
// boundary; in particular year -1, immediately preceding the era, is leap.
func IsLeapYear(year int) bool {
	if year < 1 {
		year++
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

func daysInMonth(year, month int) int {
	t := &daysBeforeMonth[leapIndex(year)]
	return t[month] - t[month-1]
}

// daysForYears returns the number of days from the era origin to the first
// day of the given year, in closed form over the 400-year Gregorian cycle.
// The calculation year is zero based: year 1 maps to 0, years below 1 map to
// themselves. The trailing correction accounts for the year immediately
// preceding the era being leap. Strictly increasing over the no-year-zero
// sequence, which is what the year recovery scan relies on.
func daysForYears(year int) int {
	c := year
	if year > 0 {
		c = year - 1
	}
	d := c/400*146097 + c%400/100*36524 + c%100/4*1461 + c%4*365
	if c < 0 {
		d--
	}
	return d
}

// nextYear and prevYear step through the calendar year sequence, which has
// no year 0.
func nextYear(year int) int {
	if year == -1 {
		return 1
	}
	return year + 1
}

func prevYear(year int) int {
	if year == 1 {
		return -1
	}
	return year - 1
}

// yearFromDays recovers the calendar year containing the day number: a
// rounded estimate, corrected by scanning. Both loops terminate because
// daysForYears is strictly increasing.
func yearFromDays(days int) int {
	year := int(math.Round(float64(days) / 365.2425))
	if year == 0 {
		year = 1
	}
	for daysForYears(year) > days {
		year = prevYear(year)
	}
	for daysForYears(nextYear(year)) <= days {
		year = nextYear(year)
	}
	return year
}

// split derives the calendar triple of a finite date.
func (d Date) split() (year, month, day int) {
	year = yearFromDays(int(d.days))
	doy := int(d.days) - daysForYears(year) + 1
	t := &daysBeforeMonth[leapIndex(year)]
	month = 1
	for month < 12 && t[month] < doy {
		month++
	}
	day = doy - t[month-1]
	return year, month, day
}

// IsFinite reports whether d is a finite date rather than an infinity.
func (d Date) IsFinite() bool {
	return d.kind == kindFinite
}

// Year returns the calendar year, never 0. It returns 0 when d is not
// finite.
func (d Date) Year() int {
	if d.kind != kindFinite {
		return 0
	}
	return yearFromDays(int(d.days))
}

// Month returns the month 1-12, or 0 when d is not finite.
func (d Date) Month() int {
	if d.kind != kindFinite {
		return 0
	}
	_, month, _ := d.split()
	return month
}

// Day returns the day of month 1-31, or 0 when d is not finite.
func (d Date) Day() int {
	if d.kind != kindFinite {
		return 0
	}
	_, _, day := d.split()
	return day
}

// DayOfYear returns the 1-based ordinal day within the year, or 0 when d is
// not finite.
func (d Date) DayOfYear() int {
	if d.kind != kindFinite {
		return 0
	}
	return int(d.days) - daysForYears(yearFromDays(int(d.days))) + 1
}

// Weekday returns the day of the week. Day number 0 (the era origin) is a
// Monday. Returns Sunday when d is not finite.
func (d Date) Weekday() time.Weekday {
	if d.kind != kindFinite {
		return time.Sunday
	}
	return time.Weekday(floorMod(int64(d.days)+1, 7))
}

// AddDays returns d shifted by n days. Infinities map to themselves. Day
// arithmetic itself cannot fail; the year bounds are re-checked the next
// time a calendar field is derived.
func (d Date) AddDays(n int) Date {
	if d.kind != kindFinite {
		return d
	}
	return dateFromDays(d.days + int32(n))
}

// AddMonths returns d shifted by n calendar months, carrying through years
// in 12-month steps and skipping year 0. When the day of month does not
// exist in the target month it is clamped to the month's last day, so
// January 31 plus one month is February 28 or 29, never March. Infinities
// map to themselves.
func (d Date) AddMonths(n int) (Date, error) {
	if d.kind != kindFinite {
		return d, nil
	}
	year, month, day := d.split()
	total := int64(calcYear(year))*12 + int64(month-1) + int64(n)
	newYear := fromCalcYear(int(floorDiv(total, 12)))
	newMonth := int(floorMod(total, 12)) + 1
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, fmt.Errorf("types: %s plus %d months: %w", d, n, ErrRange)
	}
	if max := daysInMonth(newYear, newMonth); day > max {
		day = max
	}
	return NewDate(newYear, newMonth, day)
}

// AddYears returns d shifted by n calendar years, skipping year 0 in the
// direction of travel and clamping February 29 to February 28 when the
// target year is not leap. Infinities map to themselves.
func (d Date) AddYears(n int) (Date, error) {
	if d.kind != kindFinite {
		return d, nil
	}
	year, month, day := d.split()
	newYear := fromCalcYear(calcYear(year) + n)
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, fmt.Errorf("types: %s plus %d years: %w", d, n, ErrRange)
	}
	if max := daysInMonth(newYear, month); day > max {
		day = max
	}
	return NewDate(newYear, month, day)
}

// Interval is a calendar displacement of whole months and whole days.
type Interval struct {
	Months int32
	Days   int32
}

// Add applies iv to d, months first so that the month step clamps the day of
// month before the day step shifts by a plain day count. Infinities map to
// themselves.
func (d Date) Add(iv Interval) (Date, error) {
	m, err := d.AddMonths(int(iv.Months))
	if err != nil {
		return Date{}, err
	}
	return m.AddDays(int(iv.Days)), nil
}

// Sub returns the day-count Interval d minus other. It fails with
// ErrInvalidOperation when either operand is an infinity.
func (d Date) Sub(other Date) (Interval, error) {
	if d.kind != kindFinite || other.kind != kindFinite {
		return Interval{}, fmt.Errorf("types: subtract %s from %s: %w", other, d, ErrInvalidOperation)
	}
	return Interval{Days: d.days - other.days}, nil
}

// UnixMicro returns d as microseconds since the unix epoch, the tick unit of
// the nimbus timestamp type. It fails with ErrInvalidOperation for an
// infinity and with ErrOverflow when the result does not fit in an int64.
func (d Date) UnixMicro() (int64, error) {
	if d.kind != kindFinite {
		return 0, fmt.Errorf("types: %s as timestamp: %w", d, ErrInvalidOperation)
	}
	days := int64(d.days) - unixEpochDays
	if days > math.MaxInt64/microsPerDay || days < math.MinInt64/microsPerDay {
		return 0, fmt.Errorf("types: %s as timestamp: %w", d, ErrOverflow)
	}
	return days * microsPerDay, nil
}

// Time returns d as a time.Time at midnight UTC. Fails the way UnixMicro
// fails.
func (d Date) Time() (time.Time, error) {
	us, err := d.UnixMicro()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(us).UTC(), nil
}

// Compare orders d against other: NegInfinity before every finite date,
// Infinity after, finite dates by day number. Returns -1, 0 or 1.
func (d Date) Compare(other Date) int {
	if r, ro := d.rank(), other.rank(); r != ro {
		if r < ro {
			return -1
		}
		return 1
	}
	if d.kind != kindFinite {
		return 0
	}
	switch {
	case d.days < other.days:
		return -1
	case d.days > other.days:
		return 1
	}
	return 0
}

func (d Date) rank() int {
	switch d.kind {
	case kindNegInfinity:
		return -1
	case kindInfinity:
		return 1
	}
	return 0
}

// Equal reports whether d and other are the same value. Consistent with
// Compare and with Hash.
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// Before reports whether d orders before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d orders after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Hash returns a murmur3 hash of d. Equal dates hash equal.
func (d Date) Hash() uint32 {
	var b [5]byte
	b[0] = byte(d.kind)
	if d.kind == kindFinite {
		binary.BigEndian.PutUint32(b[1:], uint32(d.days))
	}
	return murmur3.Sum32(b[:])
}

// ParseDate parses the textual date format: "infinity", "-infinity", or
// [-]YYYY-MM-DD[ BC] with the year optionally zero padded and a trailing
// " BC" negating it. Surrounding whitespace is trimmed. Structural
// mismatches fail with ErrFormat; a year too large for its integer type
// fails with ErrOverflow.
func ParseDate(s string) (Date, error) {
	t := strings.TrimSpace(s)
	switch t {
	case "infinity":
		return Infinity, nil
	case "-infinity":
		return NegInfinity, nil
	}
	body := t
	bc := false
	if strings.HasSuffix(body, " BC") {
		bc = true
		body = body[:len(body)-len(" BC")]
	}
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}
	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("types: parse date %q: %w", s, ErrFormat)
	}
	year, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Date{}, fmt.Errorf("types: parse date %q: year: %w", s, ErrOverflow)
		}
		return Date{}, fmt.Errorf("types: parse date %q: %w", s, ErrFormat)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("types: parse date %q: %w", s, ErrFormat)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("types: parse date %q: %w", s, ErrFormat)
	}
	if neg {
		year = -year
	}
	if bc {
		year = -year
	}
	d, err := NewDate(int(year), month, day)
	if err != nil {
		return Date{}, fmt.Errorf("types: parse date %q: %w", s, ErrFormat)
	}
	return d, nil
}

// TryParseDate is the non-failing variant of ParseDate. On failure it
// reports false and returns the era origin as a placeholder.
func TryParseDate(s string) (Date, bool) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// String formats d in the textual date format: the zero padded absolute
// year, month and day, with " BC" appended for dates before the era, or the
// literal infinity strings.
func (d Date) String() string {
	switch d.kind {
	case kindInfinity:
		return "infinity"
	case kindNegInfinity:
		return "-infinity"
	}
	year, month, day := d.split()
	if year < 0 {
		year = -year
	}
	if d.days < 0 {
		return fmt.Sprintf("%04d-%02d-%02d BC", year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// calcYear maps a calendar year onto the zero-based year line used by the
// day-count formula; fromCalcYear maps back, which is also what skips year 0
// during year arithmetic.
func calcYear(year int) int {
	if year > 0 {
		return year - 1
	}
	return year
}

func fromCalcYear(c int) int {
	if c >= 0 {
		return c + 1
	}
	return c
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
