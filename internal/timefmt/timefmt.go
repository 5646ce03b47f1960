// Package timefmt renders bar timestamps in an exchange-local timezone.
package timefmt

import (
	"time"

	"go.uber.org/zap"
)

// Layout is the wall-clock form written to summary rows, e.g.
// "2024-07-15 09:30:00 EDT".
const Layout = "2006-01-02 15:04:05 MST"

// DefaultZone is the exchange timezone used when none is configured.
const DefaultZone = "America/New_York"

// Missing is emitted when a timestamp cannot be rendered.
const Missing = "N/A"

// Formatter converts instants to exchange-local display strings.
type Formatter struct {
	loc *time.Location
}

// New builds a Formatter for the named IANA zone. An empty name selects
// DefaultZone. If the zone cannot be loaded the formatter is still usable
// and renders every timestamp as Missing.
func New(zone string) *Formatter {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		zap.S().Warnw("timezone unavailable, timestamps will be N/A", "zone", zone, "error", err)
		return &Formatter{}
	}
	return &Formatter{loc: loc}
}

// Format renders t in the formatter's zone. Zero instants and formatters
// without a loaded zone yield Missing.
func (f *Formatter) Format(t time.Time) string {
	if f == nil || f.loc == nil || t.IsZero() {
		return Missing
	}
	return t.In(f.loc).Format(Layout)
}

// Location returns the loaded zone, or UTC when none is available.
func (f *Formatter) Location() *time.Location {
	if f == nil || f.loc == nil {
		return time.UTC
	}
	return f.loc
}
