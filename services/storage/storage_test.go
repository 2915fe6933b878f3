package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "versioned delivery URL",
			url:      "https://res.cloudinary.com/demo/image/upload/v1712345/plans/covers/abc123.jpg",
			expected: "plans/covers/abc123",
		},
		{
			name:     "no version segment",
			url:      "https://res.cloudinary.com/demo/image/upload/plans/covers/abc123.png",
			expected: "plans/covers/abc123",
		},
		{
			name:     "flat asset without folder",
			url:      "https://res.cloudinary.com/demo/image/upload/v9/abc123.jpg",
			expected: "abc123",
		},
		{
			name:     "not a delivery URL",
			url:      "https://cdn.example/covers/abc123.jpg",
			expected: "",
		},
		{
			name:     "upload with nothing after it",
			url:      "https://res.cloudinary.com/demo/image/upload",
			expected: "",
		},
		{
			name:     "unparseable",
			url:      "://not-a-url",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicIDFromURL(tt.url); got != tt.expected {
				t.Fatalf("PublicIDFromURL(%q) = %q want %q", tt.url, got, tt.expected)
			}
		})
	}
}
