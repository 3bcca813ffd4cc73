// Package catalog defines the read-only movie catalog contract the search
// pipeline consumes, together with the shared listing and detail types.
//
// The production implementation lives in catalog/tmdb, a client for The
// Movie Database HTTP API. Tests use catalog/mock, a scripted in-memory
// provider. The pipeline depends only on the Provider interface, so the
// catalog backend can be swapped without touching pipeline code.
package catalog
