// Package railapi is the HTTP client for the 12306 query endpoints.
//
// The service keys sessions on cookies handed out by an init page, so
// the client carries a cookie jar and exposes a priming request. The
// transfer-search path is not fixed; it is scraped from an embedded
// JS assignment on the lcQuery init page and memoized per process.
package railapi
