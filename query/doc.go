// Package query orchestrates ticket lookups against the 12306
// service: direct availability, transfer itineraries with their
// paginated continuation protocol, and per-train route stops. It
// validates inputs before touching the network and hands raw
// responses to package codec for decoding.
package query
