package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrSnapshotRequired is returned when a scan request carries no page snapshot
	ErrSnapshotRequired = errors.New("page snapshot with a url is required")
	// ErrNoSnapshots is returned when a compare request carries an empty page list
	ErrNoSnapshots = errors.New("at least one page snapshot is required")
	// ErrRecordIDRequired is returned when a deep scan request has no record id
	ErrRecordIDRequired = errors.New("record id is required")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
)
