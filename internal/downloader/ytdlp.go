package downloader

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/kontinentkm/SaveItBot/internal/media"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

const tmpPrefix = "saveit-ytdlp-"

// Options control a single download run. Timeout is passed to yt-dlp as its
// socket timeout; retries on transient failures happen inside yt-dlp itself.
type Options struct {
	CookiesFile string
	Timeout     time.Duration
}

// Result owns the temporary directory for exactly one request. Files are
// sorted by base name so album composition is deterministic.
type Result struct {
	Dir   string
	Files []media.File
}

// TotalSize sums the file sizes, best effort.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		if info, err := os.Stat(f.Path); err == nil {
			total += info.Size()
		}
	}
	return total
}

// Cleanup removes the temporary directory. Errors are swallowed; calling it
// twice is a no-op.
func (r *Result) Cleanup() {
	if r.Dir == "" {
		return
	}
	if err := os.RemoveAll(r.Dir); err != nil {
		logger.Warn("failed to remove temp directory", "dir", r.Dir, "error", err)
	}
	r.Dir = ""
}

// Download fetches all media behind an Instagram URL (post/reel/story/
// highlight) via yt-dlp into a fresh temp directory. On failure the directory
// is removed before the error is returned, so nothing leaks.
func Download(ctx context.Context, url string, opts Options) (*Result, error) {
	tmpDir, err := os.MkdirTemp("", tmpPrefix)
	if err != nil {
		return nil, &Error{Category: CategoryExtraction, Err: fmt.Errorf("create temp directory: %w", err)}
	}

	args := BuildArgs(tmpDir, opts)
	args = append(args, url)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		os.RemoveAll(tmpDir)
		return nil, &Error{
			Category: Categorize(stderr.String(), err),
			Err:      fmt.Errorf("yt-dlp: %w (stderr: %s)", err, stderr.String()),
		}
	}

	files, err := CollectMediaFiles(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, &Error{Category: CategoryExtraction, Err: fmt.Errorf("collect files: %w", err)}
	}

	logger.InfoWithDuration("download finished", start, "url", url, "files", len(files))
	return &Result{Dir: tmpDir, Files: files}, nil
}

// BuildArgs constructs the yt-dlp invocation for a download into dir.
func BuildArgs(dir string, opts Options) []string {
	args := []string{
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"-o", filepath.Join(dir, "%(id)s_%(playlist_index)03d.%(ext)s"),
		"--quiet",
		"--no-warnings",
		"--no-progress",
		"--retries", "3",
		"--socket-timeout", strconv.Itoa(int(opts.Timeout.Seconds())),
	}
	if opts.CookiesFile != "" {
		args = append(args, "--cookies", opts.CookiesFile)
	}
	return args
}

// CollectMediaFiles walks dir recursively (yt-dlp may nest output depending
// on the template), keeps only recognized media extensions and sorts by base
// filename.
func CollectMediaFiles(dir string) ([]media.File, error) {
	var files []media.File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !media.Recognized(path) {
			return nil
		}
		files = append(files, media.NewFile(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i].Path) < filepath.Base(files[j].Path)
	})
	return files, nil
}
