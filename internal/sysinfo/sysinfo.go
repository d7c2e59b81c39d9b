// Package sysinfo provides process memory sampling and a CPU capability
// summary for display in verbose output and the interactive screen.
package sysinfo

import (
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of process resource usage.
type Stats struct {
	// HeapAllocBytes is the live heap size, dominated by limb vectors
	// during large operations.
	HeapAllocBytes uint64
	// SysBytes is the total memory obtained from the OS.
	SysBytes uint64
	// NumGC counts completed garbage collection cycles.
	NumGC uint32
	// Goroutines is the current goroutine count.
	Goroutines int
}

// Sample collects a single process snapshot. It never fails; values come
// straight from the runtime.
func Sample() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAllocBytes: m.HeapAlloc,
		SysBytes:       m.Sys,
		NumGC:          m.NumGC,
		Goroutines:     runtime.NumGoroutine(),
	}
}

// CPUSummary describes the host CPU as "<arch>/<cores> cores [features]".
// Only features relevant to wide integer arithmetic are listed.
func CPUSummary() string {
	var b strings.Builder
	b.WriteString(runtime.GOARCH)
	b.WriteString("/")
	b.WriteString(strconv.Itoa(runtime.NumCPU()))
	b.WriteString(" cores")

	feats := cpuFeatures()
	if len(feats) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(feats, " "))
		b.WriteString("]")
	}
	return b.String()
}

func cpuFeatures() []string {
	var feats []string
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasBMI2 {
		feats = append(feats, "bmi2")
	}
	if cpu.X86.HasADX {
		feats = append(feats, "adx")
	}
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "asimd")
	}
	return feats
}
