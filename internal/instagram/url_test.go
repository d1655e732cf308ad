package instagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "plain link",
			text: "https://www.instagram.com/p/XYZ/",
			want: "https://www.instagram.com/p/XYZ/",
			ok:   true,
		},
		{
			name: "link inside text",
			text: "check this out https://www.instagram.com/reel/ABC123/ nice",
			want: "https://www.instagram.com/reel/ABC123/",
			ok:   true,
		},
		{
			name: "no www",
			text: "https://instagram.com/stories/someone/123",
			want: "https://instagram.com/stories/someone/123",
			ok:   true,
		},
		{
			name: "http scheme",
			text: "http://instagram.com/p/XYZ",
			want: "http://instagram.com/p/XYZ",
			ok:   true,
		},
		{
			name: "trailing punctuation stripped",
			text: "(see https://www.instagram.com/p/XYZ).",
			want: "https://www.instagram.com/p/XYZ",
			ok:   true,
		},
		{
			name: "trailing bracket and comma",
			text: "[link: https://instagram.com/reel/A1],",
			want: "https://instagram.com/reel/A1",
			ok:   true,
		},
		{
			name: "first of two links wins",
			text: "https://instagram.com/p/first https://instagram.com/p/second",
			want: "https://instagram.com/p/first",
			ok:   true,
		},
		{
			name: "empty text",
			text: "",
			ok:   false,
		},
		{
			name: "no link",
			text: "hello there",
			ok:   false,
		},
		{
			name: "other host",
			text: "https://www.youtube.com/watch?v=abc",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractURL(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractURLNeverEndsInPunctuation(t *testing.T) {
	texts := []string{
		"https://instagram.com/p/XYZ)",
		"https://instagram.com/p/XYZ...",
		"https://instagram.com/p/XYZ),]",
		"wow https://www.instagram.com/reel/Q_w-1/],",
	}
	for _, text := range texts {
		got, ok := ExtractURL(text)
		assert.True(t, ok, text)
		assert.False(t, strings.ContainsAny(got[len(got)-1:], ").,]"), "got %q from %q", got, text)
	}
}
