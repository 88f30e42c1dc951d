// Package serializer renders query results to an output stream in text,
// json or yaml format. Text output joins values with a configurable
// delimiter; structured formats map field tokens to rendered values.
package serializer
