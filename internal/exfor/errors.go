// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exfor

import "fmt"

// TransportError reports a failed archive call: a network error, a non-2xx
// status, or a malformed JSON body. Endpoint names the archive endpoint that
// failed ("e4list" or "e4sig").
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("exfor %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NoMatchError reports that the listing call succeeded but no section
// matched the requested library. Distinct from TransportError: the archive
// answered, it just holds no qualifying measurement.
type NoMatchError struct {
	Target   string
	Reaction string
	Library  string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no %s section for %s(%s)", e.Library, e.Target, e.Reaction)
}

// EmptyDatasetError reports that the point-series call succeeded but the
// response envelope contained zero datasets.
type EmptyDatasetError struct {
	SectID    int
	PenSectID int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("section %d (parent %d) returned no datasets", e.SectID, e.PenSectID)
}
