package bundle

import (
	"strings"
	"unicode"
)

// bannerToken marks the start of a block that is preserved verbatim until
// the next blank line. The winDragon scripts keep ASCII art after it.
const bannerToken = "Show-Dragon"

// Cleaner strips comments and blank lines from script source while
// preserving banner blocks. It is fed one line at a time and carries the
// verbatim state across calls.
type Cleaner struct {
	verbatim bool
}

// Clean processes a single raw line. The second return value reports
// whether the line should be emitted; comment-only and blank lines outside
// a banner block are dropped.
func (c *Cleaner) Clean(line string) (string, bool) {
	if strings.Contains(line, bannerToken) {
		c.verbatim = true
	}
	if c.verbatim {
		// Inside the banner only trailing whitespace goes; a blank line
		// ends the block and is still emitted.
		if strings.TrimSpace(line) == "" {
			c.verbatim = false
		}
		return trimTrailing(line), true
	}

	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}

func trimTrailing(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
