package instagram

import "errors"

var (
	// ErrUpstream wraps a non-success response from the Graph API.
	ErrUpstream = errors.New("instagram upstream error")

	// ErrNotConfigured means no credential pair exists for the handle and
	// no default pair is set. The read path degrades to an empty feed; the
	// ingest path reports it to the operator.
	ErrNotConfigured = errors.New("instagram tokens not configured")

	// ErrArtistUnresolved means ingest could not map the handle to an
	// artist and no explicit artist id was supplied.
	ErrArtistUnresolved = errors.New("unable to resolve artist for handle")
)
