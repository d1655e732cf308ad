package media

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"a.jpg", KindPhoto},
		{"a.jpeg", KindPhoto},
		{"a.png", KindPhoto},
		{"a.webp", KindPhoto},
		{"b.mp4", KindVideo},
		{"b.mov", KindVideo},
		{"b.m4v", KindVideo},
		{"b.webm", KindVideo},
		{"/tmp/dl/ABC_001.MP4", KindVideo},
		{"/tmp/dl/ABC_002.JPG", KindPhoto},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized("x.jpg"))
	assert.True(t, Recognized("x.webm"))
	assert.True(t, Recognized("X.WEBP"))
	assert.False(t, Recognized("x.json"))
	assert.False(t, Recognized("x.mp4.part"))
	assert.False(t, Recognized("x"))
}

func TestChunkCoversAllItemsInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 12, 25, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			chunks := Chunk(items, AlbumLimit)

			wantChunks := (n + AlbumLimit - 1) / AlbumLimit
			assert.Len(t, chunks, wantChunks)

			var flat []int
			for i, c := range chunks {
				if i < len(chunks)-1 {
					assert.Len(t, c, AlbumLimit)
				} else {
					assert.LessOrEqual(t, len(c), AlbumLimit)
					assert.NotEmpty(t, c)
				}
				flat = append(flat, c...)
			}
			assert.Equal(t, items, flat)
		})
	}
}

func TestChunkEmptyAndDegenerate(t *testing.T) {
	assert.Nil(t, Chunk([]int{}, 10))
	assert.Nil(t, Chunk([]int(nil), 10))
	assert.Nil(t, Chunk([]int{1, 2}, 0))

	chunks := Chunk([]string{"a", "b", "c"}, 1)
	assert.Len(t, chunks, 3)
}

func TestNewFile(t *testing.T) {
	f := NewFile("/tmp/x/clip.mov")
	assert.Equal(t, "/tmp/x/clip.mov", f.Path)
	assert.Equal(t, KindVideo, f.Kind)
}
