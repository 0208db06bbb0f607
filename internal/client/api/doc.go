// Package api speaks the fleet server's JSON contract. It exposes a Client
// interface so higher layers (collection stores, CLI) can be tested against
// fakes, plus the REST implementation used in production.
//
// Every mutating call returns the full, current collection as the server
// asserts it after the mutation; callers replace their local copy wholesale
// instead of patching records in place.
package api
