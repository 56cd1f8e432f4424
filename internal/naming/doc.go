// Package naming provides the identifier case helpers shared by the
// generator's Go code and its template functions.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
