package drop

import (
	"net/url"
	"strings"
)

// SplitPasted turns text pasted into a terminal into file paths.
//
// Terminals deliver a dropped file as pasted text. Multiple files arrive
// either one per line or on a single line separated by spaces, with
// spaces inside a name escaped by a backslash or the name quoted.
// file:// URLs are decoded to local paths.
func SplitPasted(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var fields []string
	if strings.Contains(text, "\n") {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fields = append(fields, unquote(line))
		}
	} else {
		fields = splitShell(text)
	}

	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		if p := fromURL(f); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// splitShell splits a line on unescaped, unquoted spaces.
func splitShell(s string) []string {
	var (
		fields  []string
		cur     strings.Builder
		quote   byte
		escaped bool
		started bool
	)

	flush := func() {
		if started {
			fields = append(fields, cur.String())
		}
		cur.Reset()
		started = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			started = true
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
			started = true
		}
	}
	flush()
	return fields
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func fromURL(s string) string {
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil || u.Path == "" {
		return s
	}
	return u.Path
}
