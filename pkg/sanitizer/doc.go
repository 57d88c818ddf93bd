// Package sanitizer normalizes visitor input before it reaches a booking session.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully, typically by returning
// empty strings or the clamped minimum rather than errors.
//
// Normalization includes:
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Emails: Trim and lowercase
//   - Country codes: Ensure a single leading "+" followed by digits
//   - Phone numbers: Digits-only view for validation, E.164 rendering for channels
//   - Counters: Clamp numeric-as-string values into their declared bounds
package sanitizer
