// Package station loads and indexes the 12306 station table.
//
// The table ships as a quoted pipe-delimited blob inside a JS
// assignment statement. It is fetched and parsed at most once per
// process; concurrent callers share one in-flight load and a failed
// load is retried on the next call.
package station
