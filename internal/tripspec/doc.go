// Package tripspec splits the trips of a route into its two declared
// directions and orders each trip's stops against the anchor stops declared
// for that direction.
//
// A route is covered when the reference Table has an entry for it. Trips of
// uncovered routes are handed to the Fallback, or reported with
// ErrNoSpecForRoute when there is none.
package tripspec
