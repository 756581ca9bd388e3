package filewatcher

import (
	"path/filepath"
	"strings"
	"sync"
)

// IgnorePatterns matches paths against a small set of gitignore-like
// globs: "*.tmp" matches any file with that suffix, "build/" matches a
// directory named build at any depth, "**/cache" matches a path
// component named cache at any depth. This intentionally covers less
// ground than a full gitignore implementation — editor scratch files
// and build directories are the only shapes the asset libraries need
// to filter out (SPEC_FULL's "watcher ignore patterns").
type IgnorePatterns struct {
	mu       sync.RWMutex
	patterns []pattern
}

type pattern struct {
	glob    string
	dirOnly bool
}

// NewIgnorePatterns builds a matcher from a set of patterns, skipping
// blank entries.
func NewIgnorePatterns(patterns []string) *IgnorePatterns {
	ip := &IgnorePatterns{}
	for _, p := range patterns {
		ip.Add(p)
	}
	return ip
}

// Add registers one more pattern.
func (ip *IgnorePatterns) Add(p string) {
	p = strings.TrimSpace(p)
	if p == "" {
		return
	}
	dirOnly := strings.HasSuffix(p, "/")
	p = strings.TrimSuffix(p, "/")
	p = strings.TrimPrefix(p, "**/")
	p = strings.TrimPrefix(p, "/")

	ip.mu.Lock()
	ip.patterns = append(ip.patterns, pattern{glob: p, dirOnly: dirOnly})
	ip.mu.Unlock()
}

// Match reports whether path (any depth under the watch root) should
// be ignored. Every path component is checked against every pattern;
// a directory-only pattern ignores the whole subtree under a matching
// component.
func (ip *IgnorePatterns) Match(path string, isDir bool) bool {
	ip.mu.RLock()
	defer ip.mu.RUnlock()
	if len(ip.patterns) == 0 {
		return false
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, part := range parts {
		partIsDir := isDir || i < len(parts)-1
		for _, p := range ip.patterns {
			if p.dirOnly && !partIsDir {
				continue
			}
			if ok, _ := filepath.Match(p.glob, part); ok {
				return true
			}
		}
	}
	return false
}

// DefaultIgnorePatterns covers the editor scratch files and VCS/build
// directories that would otherwise churn the asset libraries.
var DefaultIgnorePatterns = []string{
	".git/",
	"*.tmp",
	"*.bak",
	"*~",
	".DS_Store",
}
