package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// startProfiles starts the CPU profile when cpuPath is set and arranges for a
// heap profile to be written to heapPath on stop. Either path may be empty.
// The returned stop func is safe to call more than once.
func startProfiles(cpuPath, heapPath string) (func(), error) {
	var cpuFile *os.File
	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, err
		}
		cpuFile = f
		log.Printf("Writing CPU profile to %s", cpuPath)
	}

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if cpuFile != nil {
				pprof.StopCPUProfile()
				_ = cpuFile.Close()
			}
			if heapPath != "" {
				writeHeapProfile(heapPath)
			}
		})
	}
	return stop, nil
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Heap profile: %v", err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("Heap profile: %v", err)
	}
}
