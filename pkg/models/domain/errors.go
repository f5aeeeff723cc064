package domain

import "errors"

var (
	// ErrUnknownDomain is returned by catalog lookups for a domain id that is
	// not registered. The detector always falls back to the general profile,
	// so seeing this error downstream indicates a programming mistake.
	ErrUnknownDomain = errors.New("unknown business domain")

	// ErrMalformedDataset marks structural problems (zero rows, duplicate
	// column names) that abort a run before any KPI work starts.
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrNarrativeUnavailable is recorded on a report when the AI narrative
	// call failed. The numeric results remain valid and the run still
	// succeeds with placeholder text.
	ErrNarrativeUnavailable = errors.New("narrative generation unavailable")

	// ErrRunNotFound is returned by the run store for an unknown run id.
	ErrRunNotFound = errors.New("analysis run not found")
)
