// Package chemdata implements the property table engine behind every
// lookup package:
//
//   - [Table]: an immutable CAS-indexed matrix parsed from tab
//     separated text
//   - [Source]: a lazily loaded table, parsed exactly once per process
//   - [Binding]: ties a public method name to the lookup that serves it
//   - [Register]: the global named-table registry the CLI enumerates,
//     preloads and dumps
//
// Lookups are total. Unknown compounds, unknown method names, blank
// cells and failed loads all report absence as (0, false), never an
// error. Parse errors surface only through [Preload] and
// [Source.Table].
//
// # Thread Safety
//
// Tables are immutable once parsed and sources load under sync.Once,
// so concurrent lookups are safe without further locking.
package chemdata
