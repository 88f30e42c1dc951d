// Package query defines the closed catalog of queryable categories and
// their field tokens.
//
// A Category names a hardware/OS subsystem (os, cpu, memory, swap, drive,
// sensor, network) or an entity listing (list-cpus, list-sensors,
// list-networks). Each non-listing category owns a closed, ordered set of
// Field tokens; Parse validates a user-supplied token against that set with
// case-insensitive matching and returns the normalized Field.
//
// Within one category, field tokens are pairwise distinct under case
// folding, so normalization cannot introduce ambiguity.
package query
