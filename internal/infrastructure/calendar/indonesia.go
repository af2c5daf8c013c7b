package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// RegionIndonesia is the region code served by this provider
const RegionIndonesia = "ID"

// seasonalWindow is one culturally sensitive high-demand period
type seasonalWindow struct {
	name           string
	start          time.Time
	end            time.Time
	multiplier     float64
	considerations []string
}

// IndonesiaCalendar answers business-calendar questions for Indonesian
// tenants. Windows and holidays are static tables; dates for the Islamic
// calendar are the officially announced ones per year.
type IndonesiaCalendar struct {
	location *time.Location
	windows  []seasonalWindow
	holidays map[string]string // "01-01" or "2026-03-20" -> holiday name
}

// NewIndonesiaCalendar creates a calendar provider for the given timezone
// (normally Asia/Jakarta)
func NewIndonesiaCalendar(timezone string) (*IndonesiaCalendar, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar: invalid timezone %q: %w", timezone, err)
	}

	return &IndonesiaCalendar{
		location: location,
		windows:  indonesianSeasonalWindows(location),
		holidays: indonesianHolidays(),
	}, nil
}

// Location returns the location the calendar resolves local days in
func (c *IndonesiaCalendar) Location() *time.Location {
	return c.location
}

// InSensitivePeriod reports whether the instant falls in a sensitive
// high-demand period
func (c *IndonesiaCalendar) InSensitivePeriod(ctx context.Context, region string, at time.Time) (bool, error) {
	window, err := c.activeWindow(region, at)
	if err != nil {
		return false, err
	}
	return window != nil, nil
}

// IsHoliday reports whether the instant is a recognized public holiday
func (c *IndonesiaCalendar) IsHoliday(ctx context.Context, region string, at time.Time) (bool, error) {
	if err := c.checkRegion(region); err != nil {
		return false, err
	}
	local := at.In(c.location)
	if _, ok := c.holidays[local.Format("2006-01-02")]; ok {
		return true, nil
	}
	_, ok := c.holidays[local.Format("01-02")]
	return ok, nil
}

// SeasonalMultiplier returns the demand multiplier for the instant
func (c *IndonesiaCalendar) SeasonalMultiplier(ctx context.Context, region string, at time.Time) (float64, error) {
	window, err := c.activeWindow(region, at)
	if err != nil {
		return 0, err
	}
	if window == nil {
		return 1.0, nil
	}
	return window.multiplier, nil
}

// ActiveConsiderations returns the cultural considerations for the instant
func (c *IndonesiaCalendar) ActiveConsiderations(ctx context.Context, region string, at time.Time) ([]string, error) {
	window, err := c.activeWindow(region, at)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, nil
	}
	return window.considerations, nil
}

func (c *IndonesiaCalendar) activeWindow(region string, at time.Time) (*seasonalWindow, error) {
	if err := c.checkRegion(region); err != nil {
		return nil, err
	}
	local := at.In(c.location)
	for i := range c.windows {
		w := &c.windows[i]
		if !local.Before(w.start) && local.Before(w.end) {
			return w, nil
		}
	}
	return nil, nil
}

func (c *IndonesiaCalendar) checkRegion(region string) error {
	if region != RegionIndonesia {
		return fmt.Errorf("calendar: unsupported region %q", region)
	}
	return nil
}

// date constructs a local midnight timestamp
func date(location *time.Location, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// indonesianSeasonalWindows returns the sensitive high-demand windows.
// Ramadan windows run through the end of the Lebaran week because demand and
// logistics pressure stay elevated until after Eid.
func indonesianSeasonalWindows(loc *time.Location) []seasonalWindow {
	ramadanConsiderations := []string{
		"Adjusted business hours during fasting",
		"Order volume peaks before iftar and after tarawih",
		"Logistics capacity reduced during Lebaran week",
	}
	harbolnasConsiderations := []string{
		"Flash-sale order spikes",
		"Platform rate limits tightened during campaign hours",
	}

	var windows []seasonalWindow
	for _, r := range []struct {
		year       int
		start, end time.Time
	}{
		{2024, date(loc, 2024, time.March, 11), date(loc, 2024, time.April, 18)},
		{2025, date(loc, 2025, time.March, 1), date(loc, 2025, time.April, 8)},
		{2026, date(loc, 2026, time.February, 18), date(loc, 2026, time.March, 28)},
		{2027, date(loc, 2027, time.February, 8), date(loc, 2027, time.March, 17)},
	} {
		windows = append(windows, seasonalWindow{
			name:           fmt.Sprintf("Ramadan %d", r.year),
			start:          r.start,
			end:            r.end,
			multiplier:     2.5,
			considerations: ramadanConsiderations,
		})
	}

	for year := 2024; year <= 2027; year++ {
		windows = append(windows,
			seasonalWindow{
				name:           fmt.Sprintf("Harbolnas 11.11 %d", year),
				start:          date(loc, year, time.November, 10),
				end:            date(loc, year, time.November, 12),
				multiplier:     3.0,
				considerations: harbolnasConsiderations,
			},
			seasonalWindow{
				name:           fmt.Sprintf("Harbolnas 12.12 %d", year),
				start:          date(loc, year, time.December, 11),
				end:            date(loc, year, time.December, 13),
				multiplier:     3.0,
				considerations: harbolnasConsiderations,
			},
		)
	}

	return windows
}

// indonesianHolidays returns national public holidays. Fixed-date holidays
// use "MM-DD" keys; movable ones use full "YYYY-MM-DD" dates.
func indonesianHolidays() map[string]string {
	return map[string]string{
		"01-01": "Tahun Baru",
		"05-01": "Hari Buruh",
		"06-01": "Hari Lahir Pancasila",
		"08-17": "Hari Kemerdekaan",
		"12-25": "Hari Natal",

		"2024-04-10": "Idul Fitri",
		"2024-04-11": "Idul Fitri",
		"2025-03-31": "Idul Fitri",
		"2025-04-01": "Idul Fitri",
		"2026-03-20": "Idul Fitri",
		"2026-03-21": "Idul Fitri",
		"2027-03-10": "Idul Fitri",
		"2027-03-11": "Idul Fitri",
	}
}

var _ syncvalidation.CalendarProvider = (*IndonesiaCalendar)(nil)
