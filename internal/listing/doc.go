// Package listing fetches the recent victims page and turns its table into
// model.VictimEntry values.
//
// The page layout is assumed, not discovered: the first <table> in the
// document holds the listing, its first row is a header, and every later row
// carries date, title and group in its first three <td> cells. That
// assumption lives in extractEntries so a layout change only touches one
// function.
//
// Network failures are hard errors (FetchError). A page without any table is
// soft: a diagnostic is emitted and an empty result is returned.
package listing
