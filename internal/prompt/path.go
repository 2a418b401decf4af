package prompt

import "strings"

// Ellipsis marks the first visible segment of a truncated path.
const Ellipsis = "..."

// Abbreviate shortens cwd for display. A cwd starting with home is shown
// relative to "~", and only the last maxSegments segments are kept, the first
// of them prefixed with Ellipsis. A maxSegments below 1 disables truncation.
func Abbreviate(cwd, home string, maxSegments int) string {

	inHome := home != "" && strings.HasPrefix(cwd, home)
	if inHome {
		cwd = strings.TrimPrefix(cwd, home)
	}

	segments := strings.Split(cwd, "/")

	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}

	if len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	if maxSegments > 0 && len(segments) > maxSegments {
		segments = segments[len(segments)-maxSegments:]
		segments[0] = Ellipsis + segments[0]
	}

	joined := strings.Join(segments, "/")

	if !inHome {
		return "/" + joined
	}

	if joined == "" {
		return "~"
	}

	return "~/" + joined

}
