// Package hafas turns a single departure record of a HAFAS style journey API
// into a normalized Event for a departure board.
//
// A Normalizer is built once from the board settings and mapping tables and can then be
// shared; every Event it produces keeps a reference to it for the derived properties
// (cleaned place names, platform, notes, line colour).
package hafas
