// Package prompt turns the raw inputs gathered by the shell (working
// directory, home directory and git plumbing output) into the Data record
// that the render layer formats into a PS1 string. Nothing in this package
// performs I/O and nothing in it can fail: unrecognised input degrades to
// zero values.
package prompt

import (
	"Gprompt/internal/config"
	"strings"
)

// DisabledGitDir is the git directory reported when the prompt is drawn from
// inside a .git directory, where git status is meaningless.
const DisabledGitDir = "."

// NoCommitsHash is what `git rev-parse HEAD` prints in a repository
// without commits.
const NoCommitsHash = "HEAD"

const symbolicRefPrefix = "ref: "

// Env holds the directories the path segment is computed from.
type Env struct {
	Cwd  string
	Home string
}

// Args are the values collected by the shell integration before gprompt is
// invoked. Empty strings mean "not supplied".
type Args struct {
	GitDir    string // output of `git rev-parse --git-dir`
	Head      string // content of .git/HEAD
	Hash      string // output of `git rev-parse HEAD`
	Status    string // output of `git status --porcelain -b`
	BisectLog bool   // .git/BISECT_LOG exists
	MergeHead string // content of .git/MERGE_HEAD
	NameRev   string // output of `git name-rev --name-only HEAD`
	Host      string
	User      string
}

// Data is everything a template may show. It is built once per render.
type Data struct {
	Path string
	Host string
	User string

	Git      bool
	Branch   string
	Hash     string
	NameRev  string
	Merging  string
	Detached bool
	Init     bool

	Ahead     int
	Behind    int
	Diverged  bool
	Added     int
	Modified  int
	Untracked int
}

// Assemble builds the Data record for one render.
func Assemble(env Env, args Args, cfg config.Prompt) Data {

	data := Data{
		Path: Abbreviate(env.Cwd, env.Home, cfg.PathLength),
		Host: args.Host,
		User: args.User,
		Git:  args.GitDir != "" && args.GitDir != DisabledGitDir,
	}

	if !data.Git {
		return data
	}

	data.NameRev = args.NameRev
	data.Init = args.Hash == NoCommitsHash
	// A bisect checks out commits directly, so it counts as detached even
	// while HEAD still names a branch.
	data.Detached = !strings.HasPrefix(args.Head, symbolicRefPrefix) || args.BisectLog
	data.Merging = args.MergeHead

	status := ParseStatus(args.Status, StatusContext{Detached: data.Detached, Init: data.Init})
	data.Branch = status.Branch
	data.Ahead = status.Ahead
	data.Behind = status.Behind
	data.Diverged = status.Diverged
	data.Added = status.Added
	data.Modified = status.Modified
	data.Untracked = status.Untracked

	data.Hash = truncate(args.Hash, cfg.HashLength)

	return data

}

// truncate returns at most n leading bytes of s.
func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
