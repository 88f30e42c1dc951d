// Package cli implements the command-line interface for dshw.
//
// # Commands
//
// Every subcommand corresponds to one query category:
//
//	os             operating system and host queries
//	cpu NAME       per-CPU queries (e.g. cpu0)
//	memory         physical memory queries
//	swap           swap space queries
//	drive NAME     drive queries (e.g. /dev/sda1)
//	sensor NAME    temperature sensor queries
//	network NAME   network interface queries
//	list-cpus      enumerate CPU names
//	list-sensors   enumerate sensor labels
//	list-networks  enumerate network interface names
//
// Queries are given as positional arguments after the command (and
// after the target name where one is required) and are matched
// case-insensitively:
//
//	dshw memory total available
//	dshw cpu cpu0 usage frequency
//	dshw drive /dev/sda1 mount-point fs
//
// # Global Flags
//
//	--delimiter, -d  Separator between values in text output (default: \n)
//	--fmt, -f        Template string; %query% placeholders are substituted
//	--unit, -u       Unit for byte quantities: bits, bytes, kb..tb, kib..tib
//	--format, -t     Output format: text, json, yaml (default: text)
//	--count, -n      Number of runs; 0 repeats forever (default: 1)
//	--interval, -i   Pause between runs (e.g. 500ms, 2s)
//	--debug          Enable debug logging
//	--log-json       Output logs in JSON format
//
// Templates bypass the output format and are printed verbatim after
// substitution:
//
//	dshw os --fmt "up since %boot-time%, load %load-average1m%"
//
// Each run takes a fresh snapshot of the system, so repeated runs with
// --count and --interval observe changing values.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/inunix3/dshw/pkg/cli.version=1.0.0'"
package cli
