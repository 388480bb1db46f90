// Package server exposes the profile search engine over HTTP.
//
// The surface is small: a POST /search endpoint taking a JSON body, a GET
// /search/get twin taking query parameters, paginated profile listing, a
// single-profile lookup, and health/info endpoints. Search errors map to
// distinct status codes so callers can tell a bad request from a degraded
// embedding backend.
package server
