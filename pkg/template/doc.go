// Package template substitutes %name% placeholders in a format string
// with rendered query values.
//
// Placeholder names are field tokens scoped to the active category; %%
// produces a literal percent sign, and an unmatched trailing percent sign
// is a syntax error. Every unique placeholder resolves exactly once per
// Render call through one batched executor run, which bounds expensive
// provider side effects (such as the two-phase CPU refresh) regardless of
// how often a placeholder repeats.
package template
