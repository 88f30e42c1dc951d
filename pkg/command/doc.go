// Package command binds a query category and an optional target entity
// into an executor that answers batched field queries.
//
// Bind performs target resolution against the provider's snapshot (exact
// name match, first occurrence wins on duplicates) and fails with
// TargetNotFoundError when the entity does not exist. The returned
// Executor renders field values as strings, one per requested field in
// input order; a failure anywhere in the batch yields no output at all.
package command
