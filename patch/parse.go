package patch

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/treepatch/patcherrors"
)

// Parse decodes a YAML or JSON sequence of patches.
//
// Values are decoded into plain Go values (map[string]any, []any, scalars);
// the applier converts them into tree containers when they are written.
func Parse(data []byte) (Patches, error) {
	var patches Patches

	// yaml.Unmarshal handles both YAML and JSON
	if err := yaml.Unmarshal(data, &patches); err != nil {
		return nil, &patcherrors.ParseError{Cause: err}
	}

	return patches, nil
}

// ParseFile reads and decodes a patch document from path.
func ParseFile(path string) (Patches, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &patcherrors.ParseError{Path: path, Cause: err}
	}

	patches, err := Parse(data)
	if err != nil {
		var pe *patcherrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &patcherrors.ParseError{Path: path, Cause: err}
	}

	return patches, nil
}

// Marshal serializes patches to YAML bytes.
func Marshal(patches Patches) ([]byte, error) {
	data, err := yaml.Marshal(patches)
	if err != nil {
		return nil, fmt.Errorf("patch: failed to marshal: %w", err)
	}
	return data, nil
}
