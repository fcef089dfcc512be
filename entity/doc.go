// Package entity models the items a documentation build knows about:
// modules, derived types, procedures, interfaces, variables, programs,
// source files and block data units, native or imported from external
// projects. Entities form trees through fixed per-kind child collections,
// and a Project gathers the top-level collections that link resolution
// searches.
//
// Collections preserve insertion order everywhere; name lookups are
// case-insensitive and first match wins. Parent references exist only so an
// entity can compute the page it is rendered on. They are never followed by
// serialization and carry no ownership.
package entity
