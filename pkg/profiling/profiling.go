// Package profiling provides CPU and memory profiling helpers wired
// to command line flags in main.
package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts CPU profiling into filePath and returns the
// function that stops it. The returned function is never nil.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err := pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a function that writes a heap profile to
// filePath. The returned function is never nil.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		runtime.GC()
		if err := pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
}
