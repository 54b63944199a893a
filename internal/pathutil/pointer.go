package pathutil

import (
	"fmt"
	"strings"
)

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes a single segment for use inside a JSON Pointer.
func Escape(segment string) string {
	if !strings.ContainsAny(segment, "~/") {
		return segment
	}
	return escaper.Replace(segment)
}

// Unescape decodes a single JSON Pointer segment.
// A "~" not followed by "0" or "1" is rejected.
func Unescape(segment string) (string, error) {
	if !strings.Contains(segment, "~") {
		return segment, nil
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] != '~' {
			continue
		}
		if i+1 >= len(segment) || (segment[i+1] != '0' && segment[i+1] != '1') {
			return "", fmt.Errorf("pathutil: invalid escape at offset %d in %q", i, segment)
		}
	}
	return unescaper.Replace(segment), nil
}

// Split decodes a JSON Pointer into its segments.
// The empty pointer denotes the whole document and yields no segments.
func Split(pointer string) ([]string, error) {
	if pointer == "" {
		return []string{}, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("pathutil: pointer %q must start with '/'", pointer)
	}
	raw := strings.Split(pointer[1:], "/")
	segments := make([]string, len(raw))
	for i, r := range raw {
		s, err := Unescape(r)
		if err != nil {
			return nil, err
		}
		segments[i] = s
	}
	return segments, nil
}

// Join encodes segments as a JSON Pointer.
func Join(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	p := Get()
	defer Put(p)
	for _, s := range segments {
		p.Push(s)
	}
	return p.String()
}
