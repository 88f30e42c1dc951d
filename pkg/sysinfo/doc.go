// Package sysinfo is the hardware/OS telemetry provider.
//
// The Provider interface exposes one synchronous snapshot read per
// subsystem. The gopsutil-backed System implementation caches the drive,
// sensor and network lists for its lifetime; one System corresponds to one
// top-level invocation, so repeated runs see fresh snapshots by
// constructing a new System each time.
//
// CPU usage reads are special: a single sample carries no usable delta, so
// GlobalCPUUsage and CPUs perform a two-phase refresh (read, sleep for the
// minimum sampling interval, read again). The sleep blocks the calling
// goroutine; callers that need responsiveness should run the whole query
// on a worker and abandon the result rather than expect cancellation.
package sysinfo
