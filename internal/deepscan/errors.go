package deepscan

import "errors"

var (
	// ErrUnexpectedStatus is returned when a document fetch gets a non-200 response
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrNoDocuments is returned when a deep scan is requested without any document links
	ErrNoDocuments = errors.New("no document links to scan")
)
