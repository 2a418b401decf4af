package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	aheadPattern  = regexp.MustCompile(`\[ahead (\d+)`)
	behindPattern = regexp.MustCompile(`behind (\d+)\]`)
	lineBreak     = regexp.MustCompile(`\n|\r`)
)

// Index-side and worktree-side codes of `git status --porcelain` that count
// towards Added and Modified respectively.
var (
	recordedInIndex    = map[byte]struct{}{'M': {}, 'A': {}, 'D': {}, 'R': {}, 'C': {}}
	modifiedInWorkTree = map[byte]struct{}{'M': {}, 'A': {}, 'U': {}, 'D': {}}
)

// StatusContext carries the HEAD state that decides whether the branch
// header of a porcelain status is meaningful.
type StatusContext struct {
	Detached bool
	Init     bool
}

// Status is the structured form of a `git status --porcelain -b` output.
// Branch, Ahead, Behind and Diverged are only filled in when HEAD is on a
// branch with at least one commit.
type Status struct {
	Branch    string
	Ahead     int
	Behind    int
	Diverged  bool
	Added     int
	Modified  int
	Untracked int
}

// ParseStatus reads the branch header and the per-file entries of raw.
// It never fails: anything it cannot recognise counts as zero.
func ParseStatus(raw string, ctx StatusContext) Status {

	var status Status

	lines := lineBreak.Split(raw, -1)
	header := lines[0]
	if len(header) > 3 {
		header = header[3:]
	} else {
		header = ""
	}

	if !ctx.Detached && !ctx.Init {
		status.Ahead = matchCount(aheadPattern, header)
		status.Behind = matchCount(behindPattern, header)
		status.Branch = branchName(header)
	}

	for _, line := range lines[1:] {

		if line == "" {
			continue
		}

		var y byte
		x := line[0]
		if len(line) > 1 {
			y = line[1]
		}

		if x == '?' && y == '?' {
			status.Untracked++
			continue
		}

		if _, ok := recordedInIndex[x]; ok {
			status.Added++
		}
		if _, ok := modifiedInWorkTree[y]; ok {
			status.Modified++
		}

	}

	status.Diverged = status.Ahead > 0 && status.Behind > 0

	return status

}

// matchCount returns the number captured by pattern in header, or 0.
func matchCount(pattern *regexp.Regexp, header string) int {
	match := pattern.FindStringSubmatch(header)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}

// branchName returns the leading token of header. The name ends at the
// first "..." upstream marker or the first space, whichever comes first.
// The first character always belongs to the name.
func branchName(header string) string {

	if header == "" {
		return ""
	}

	end := len(header)
	rest := header[1:]

	if i := strings.Index(rest, "..."); i >= 0 && i+1 < end {
		end = i + 1
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 && i+1 < end {
		end = i + 1
	}

	return header[:end]

}
