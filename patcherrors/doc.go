// Package patcherrors provides structured error types for the treepatch library.
//
// Import path: github.com/erraggy/treepatch/patcherrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the ways a patch replay can fail.
//
// # Error Types
//
//   - [SecurityError]: a path traverses through a reserved segment such as __proto__
//   - [PathError]: a path does not resolve to a container or string
//   - [OperationError]: an unknown op, or an op the target container does not support
//   - [ConfigError]: invalid options, including options supplied with a live draft
//   - [ParseError]: a patch document could not be decoded
//   - [ValidationError]: a decoded patch is structurally invalid
//
// # Sentinel Errors
//
//   - [ErrSecurity]: Matches any [SecurityError]
//   - [ErrPathResolution]: Matches any [PathError]
//   - [ErrUnsupportedOperation]: Matches [OperationError] with IsUnknown=false
//   - [ErrUnknownOperation]: Matches [OperationError] with IsUnknown=true
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//
// # Usage Examples
//
//	_, err := applier.Apply(state, patches)
//	if errors.Is(err, patcherrors.ErrSecurity) {
//	    // Reject the patch source outright
//	}
//
//	var pathErr *patcherrors.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("unresolvable path: %s\n", pathErr.Path)
//	}
package patcherrors
