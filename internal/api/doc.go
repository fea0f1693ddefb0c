// Package api is the typed client for the imgboard REST backend.
//
// One method per backend capability: auth, posts, comments, votes and
// audio metadata. Every method takes a context, suspends on network
// I/O and returns either a decoded value or a classified error; see
// errors.go for the taxonomy and its predicate functions. The client
// never retries on its own.
package api
