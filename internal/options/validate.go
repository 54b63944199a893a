// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/treepatch/patcherrors"

// Source names one candidate input source and whether the caller set it.
type Source struct {
	Option string
	Set    bool
}

// ValidateSingleInputSource ensures exactly one of sources is set.
// kind names the input (e.g., "patch") in the returned error.
func ValidateSingleInputSource(kind string, sources ...Source) error {
	var set []string
	var names []string
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &patcherrors.ConfigError{
			Option:  kind,
			Message: "must specify a " + kind + " source (use one of " + joinOr(names) + ")",
		}
	default:
		return &patcherrors.ConfigError{
			Option:  kind,
			Value:   set,
			Message: "must specify exactly one " + kind + " source",
		}
	}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == 0:
			out = n
		case i == len(names)-1:
			out += " or " + n
		default:
			out += ", " + n
		}
	}
	return out
}
