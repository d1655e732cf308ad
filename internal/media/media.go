package media

import (
	"path/filepath"
	"strings"
)

// AlbumLimit is the maximum number of items Telegram accepts in one media group.
const AlbumLimit = 10

type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

var photoExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".m4v": true, ".webm": true,
}

// File is a reference to a downloaded asset. The kind is inferred from the
// file extension once, at collection time, and never changes.
type File struct {
	Path string
	Kind Kind
}

func NewFile(path string) File {
	return File{Path: path, Kind: Classify(path)}
}

// Recognized reports whether the file extension belongs to the media set the
// bot is willing to forward. yt-dlp leaves .part, .json and similar artifacts
// behind; those never make it into a download result.
func Recognized(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return photoExts[ext] || videoExts[ext]
}

// Classify maps a recognized file to photo or video by extension. Files
// outside the recognized set are filtered out upstream and never reach here;
// anything that is not a video extension counts as a photo.
func Classify(path string) Kind {
	if videoExts[strings.ToLower(filepath.Ext(path))] {
		return KindVideo
	}
	return KindPhoto
}

// Chunk splits items into contiguous slices of at most size elements,
// preserving order. The last chunk may be shorter. Empty input yields nil.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}
