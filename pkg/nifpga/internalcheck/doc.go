// Package internalcheck holds repository policy tests.
//
// The checks load the module's production sources and fail on structural
// violations that ordinary unit tests cannot see, such as native
// interfacing leaking out of the dynlib bridge. The package exports
// nothing and is not intended for use outside this repository.
package internalcheck
