// Package profile provides optional runtime profiling for the citet
// application.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime profiling
// capabilities with conditional compilation support. Profiling is optional and
// must be enabled at build time using the "pprof" build tag.
//
// When built with profiling disabled (default), all operations are no-ops with
// zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Command-Line Usage
//
// The citet command supports profiling through command-line flags when built
// with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./citet -pprof-mode cpu render '[[%s]]' Smith
//
//	# Enable heap profiling with custom output directory
//	./citet -pprof-mode heap -pprof-dir ./profiles render '[[%s]]' Smith
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/citet/pprof   (Linux/Unix)
//	~/Library/Caches/citet/pprof  (macOS)
//	%LocalAppData%\citet\pprof    (Windows)
//
// Profile files are written with names matching the profiling mode
// (e.g., cpu.pprof, mem.pprof). Analyze them with:
//
//	go tool pprof ./citet /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
