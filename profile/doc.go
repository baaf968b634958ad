// Package profile provides optional pprof profiling for gyeop.
//
// Profiling is compiled in only when building with the pprof build tag:
//
//	go build -tags pprof
//
// Without the tag, [Config.Start] always returns a no-op implementation so
// callers never need to guard their defer chains. With the tag, the mode
// string selects a profile from [github.com/pkg/profile] (cpu, mem, block,
// mutex, goroutine, trace, ...) and results are written to the configured
// output directory.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
