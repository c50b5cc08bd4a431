// Package fault models closed sets of structured error variants and their
// exhaustive handling.
//
// A variant is any error carrying a stable Tag. Union boxes exactly one
// variant so it can travel through a Result failure slot. Schema fixes the
// closed set of tags a pipeline can produce, and Dispatcher routes a
// union's active variant to exactly one handler, with coverage of the full
// schema checked when the dispatcher is built, never when it runs.
//
// Key operations:
// - Wrap: box a variant into a Union
// - NewSchema/Compose: declare and merge closed tag sets
// - On: adapt a handler over one concrete variant type into a Handler
// - NewDispatcher/MustDispatcher: build with construction-time coverage checks
// - Dispatch/DispatchFailure: route to the single matching handler
package fault
