package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. IDs generated within the same millisecond
// remain lexicographically increasing, so request IDs sort by issue time
// in server logs.
func New() string {
	return ulid.Make().String()
}
