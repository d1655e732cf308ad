package stats

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

var (
	globalStats *BotStats
	once        sync.Once
)

// BotStats keeps in-memory download counters for the process lifetime.
// Nothing is persisted.
type BotStats struct {
	mu        sync.RWMutex
	StartTime time.Time

	TotalDownloads   int64
	TotalFiles       int64
	TotalBytes       int64
	SuccessDownloads int64
	FailedDownloads  int64

	UniqueUsers map[int64]bool

	LastDownloadTime time.Time
}

func GetStats() *BotStats {
	once.Do(func() {
		globalStats = &BotStats{
			StartTime:   time.Now(),
			UniqueUsers: make(map[int64]bool),
		}
	})
	return globalStats
}

func (s *BotStats) RecordDownload(userID int64, files int, bytes int64, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TotalDownloads++
	s.TotalFiles += int64(files)
	s.TotalBytes += bytes
	s.LastDownloadTime = time.Now()

	if success {
		s.SuccessDownloads++
	} else {
		s.FailedDownloads++
	}

	if userID != 0 {
		s.UniqueUsers[userID] = true
	}
}

// Snapshot copies the counters under the read lock.
func (s *BotStats) Snapshot() (downloads, files, bytes, success, failed int64, users int, last time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.TotalDownloads, s.TotalFiles, s.TotalBytes,
		s.SuccessDownloads, s.FailedDownloads, len(s.UniqueUsers), s.LastDownloadTime
}

type SystemInfo struct {
	OS           string
	Hostname     string
	SystemUptime time.Duration

	CPUCores int
	CPUUsage float64

	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64

	DiskUsed    uint64
	DiskTotal   uint64
	DiskPercent float64

	ProcessPID    int
	ProcessUptime time.Duration
	ProcessMem    uint64

	GoVersion  string
	Goroutines int
	HeapAlloc  uint64
}

func GetSystemInfo() (*SystemInfo, error) {
	info := &SystemInfo{}

	if hostInfo, err := host.Info(); err == nil {
		info.OS = hostInfo.OS
		info.Hostname = hostInfo.Hostname
		info.SystemUptime = time.Duration(hostInfo.Uptime) * time.Second
	}

	if cpuPercent, err := cpu.Percent(time.Second, false); err == nil && len(cpuPercent) > 0 {
		info.CPUUsage = cpuPercent[0]
	}
	info.CPUCores = runtime.NumCPU()

	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.MemUsed = memInfo.Used
		info.MemTotal = memInfo.Total
		info.MemPercent = memInfo.UsedPercent
	}

	if diskInfo, err := disk.Usage("/"); err == nil {
		info.DiskUsed = diskInfo.Used
		info.DiskTotal = diskInfo.Total
		info.DiskPercent = diskInfo.UsedPercent
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if memInfo, err := proc.MemoryInfo(); err == nil {
			info.ProcessMem = memInfo.RSS
		}
	}

	info.ProcessPID = os.Getpid()
	info.ProcessUptime = time.Since(GetStats().StartTime)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	info.GoVersion = runtime.Version()
	info.Goroutines = runtime.NumGoroutine()
	info.HeapAlloc = m.Alloc

	return info, nil
}
