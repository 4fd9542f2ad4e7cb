// Package timezone holds the application clock.
//
// Timestamps (holds, ledger entries, audit metadata) are instants rendered in the
// zone set by APP_TIMEZONE. Stay dates (check-in, check-out, inventory nights) are
// calendar days and go through Date, which pins them to UTC midnight:
//
//	checkIn := timezone.Date(req.CheckIn)
//	if checkIn.Before(timezone.Today()) { ... }
//
// Init must run once at startup. Until then every function works in UTC.
package timezone
