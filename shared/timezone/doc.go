// Package timezone converts between wall-clock days in a store's timezone and
// the UTC instants stored in the database, and renders instants for display.
//
// Usage Examples:
//
//  1. Day boundaries for a "created between" query:
//     svc := timezone.Default()                              // America/Sao_Paulo, pt-BR
//     b, err := svc.GetDateBoundaries(time.Now())
//     // b.StartOfDay == "2026-01-15T03:00:00.000Z", b.EndOfDay == "2026-01-16T02:59:59.999Z"
//
//  2. Bucketing sales by local hour:
//     hour := svc.GetHourInTimezone(order.CreatedAt)         // 0-23, local to the store
//
//  3. Display strings:
//     f := svc.Format(order.CreatedAt)                       // f.Date "15/01/2026", f.Time "09:00"
//
//  4. Per-vendor zones without touching the shared instance:
//     ny, err := svc.WithTimezone("America/New_York")
//
// A Service is immutable after construction and safe for concurrent use. The
// IANA database is embedded (time/tzdata), so results do not depend on the
// host's zoneinfo files.
package timezone
