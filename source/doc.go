// Package source provides built-in SourceProvider implementations.
//
// Source providers resolve the ordered list of federated sources that a
// partition engine distributes binding pages across:
//
//   - Static: fixed source list known at query planning time
//   - Registry: goroutine-safe registry for endpoints that join the
//     federation dynamically during setup
//
// Custom providers can be implemented by satisfying the types.SourceProvider
// interface.
package source
