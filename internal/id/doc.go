// Package id provides unique identifier generation utilities.
//
// Two flavours are offered:
//
//   - UUID: RFC 4122 version 4 identifiers used as record ids in the
//     generated dataset
//   - Short: 16-character hex ids used as JWT token ids
//
// A Source draws UUIDs from an arbitrary io.Reader so that a seeded
// random stream produces the same identifiers on every run. The
// package-level helpers read from crypto/rand.
package id
