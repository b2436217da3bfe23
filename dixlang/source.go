package dixlang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) displayName() string {
	if s.Name == "" {
		return "<input>"
	}
	return s.Name
}

// line returns the 1-based line n.
func (s *Source) line(n int) (string, bool) {
	if n < 1 || n > len(s.Lines) {
		return "", false
	}
	return s.Lines[n-1], true
}
