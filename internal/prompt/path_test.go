package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name        string
		cwd         string
		home        string
		maxSegments int
		want        string
	}{
		{"home itself", "/home/alice", "/home/alice", 3, "~"},
		{"home with trailing slash", "/home/alice/", "/home/alice", 3, "~"},
		{"inside home", "/home/alice/projects/app", "/home/alice", 2, "~/projects/app"},
		{"inside home truncated", "/home/alice/projects/app", "/home/alice", 1, "~/...app"},
		{"deep inside home", "/home/alice/a/b/c/d", "/home/alice", 3, "~/...b/c/d"},
		{"root", "/", "/home/alice", 3, "/"},
		{"outside home", "/usr/local/bin", "/home/alice", 3, "/usr/local/bin"},
		{"outside home truncated", "/usr/local/share/man", "/home/alice", 2, "/...share/man"},
		{"trailing slash outside home", "/usr/local/", "/home/alice", 3, "/usr/local"},
		{"literal prefix match", "/home/alice2/x", "/home/alice", 3, "~/2/x"},
		{"empty home", "/srv/www", "", 3, "/srv/www"},
		{"no truncation limit", "/a/b/c/d/e", "/home/alice", 0, "/a/b/c/d/e"},
		{"empty cwd", "", "/home/alice", 3, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abbreviate(tt.cwd, tt.home, tt.maxSegments))
		})
	}
}

func TestAbbreviateKeepsAtMostMaxSegments(t *testing.T) {
	cwd := "/home/alice/one/two/three/four/five"

	for max := 1; max <= 5; max++ {
		got := Abbreviate(cwd, "/home/alice", max)
		segments := splitDisplay(got)

		assert.Len(t, segments, max, got)
		if max < 5 {
			assert.Regexp(t, `^\.\.\.`, segments[0])
		}
	}
}

// splitDisplay returns the segments after the "~/" or "/" prefix.
func splitDisplay(path string) []string {
	var segments []string
	start := 2
	if path[0] == '/' {
		start = 1
	}
	last := start
	for i := start; i < len(path); i++ {
		if path[i] == '/' {
			segments = append(segments, path[last:i])
			last = i + 1
		}
	}
	return append(segments, path[last:])
}
