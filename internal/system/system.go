package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// FindLatest returns the most recently modified file in dir whose extension
// matches one of exts (case-insensitive).
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s files found in %s", strings.Join(exts, "/"), dir)
	}

	return latestFile, nil
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// Stats is a point-in-time resource snapshot for run reports.
type Stats struct {
	CPUs              int
	RSS               uint64  // resident set size of this process, bytes
	SystemUsedPercent float64 // host memory in use
}

// Snapshot collects process and host memory usage.
func Snapshot() (*Stats, error) {
	stats := &Stats{CPUs: runtime.NumCPU()}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open process: %w", err)
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return nil, fmt.Errorf("process memory: %w", err)
	}
	stats.RSS = info.RSS

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("host memory: %w", err)
	}
	stats.SystemUsedPercent = vm.UsedPercent

	return stats, nil
}
