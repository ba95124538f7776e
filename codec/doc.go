// Package codec decodes the compact text encodings used by the 12306
// ticket APIs: pipe-delimited positional ticket records, fixed-width
// price and discount blobs, #-delimited train feature flags, and the
// free-text duration strings.
//
// The positional field orders and chunk widths are an upstream
// contract with no documentation; they are kept in explicit schema
// tables so each field stays auditable. All decoders are pure and
// fall back to sentinel values instead of failing, so one odd record
// cannot poison a whole response.
package codec
