package domain

import "errors"

// ErrNotFound is returned by the session store when the requested planning
// session does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when submitted preferences fail business rule
// validation (e.g. unknown month, duration out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrProvider is returned by the generation and search adapters for any
// upstream failure: authentication, quota exhaustion, network errors, or a
// malformed/empty response. The planner catches it at the call site and
// degrades to an empty result plus a warning — it never reaches a handler
// as a crash.
var ErrProvider = errors.New("provider error")

// ErrExport is returned when PDF generation fails during encoding or layout.
// Handlers should map this to an explicit export failure; no partial file
// is ever offered for download.
var ErrExport = errors.New("export error")
