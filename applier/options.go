package applier

import (
	"fmt"

	"github.com/erraggy/treepatch/draft"
	"github.com/erraggy/treepatch/internal/options"
	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
)

// Option is a function that configures an apply operation.
type Option func(*applyConfig) error

// applyConfig holds configuration for an apply operation.
type applyConfig struct {
	// Input source for the base state (required by ApplyWithOptions)
	base    any
	baseSet bool

	// Input source for patches (exactly one must be set)
	patches    patch.Patches
	patchesSet bool
	patchBytes []byte
	patchFile  *string

	// Applier settings
	producer      draft.Producer
	logger        patch.Logger
	reserved      []string
	callable      []string
	units         StringUnits
	strictStrings bool
	metrics       *Metrics
	validate      bool
}

// hasSource reports whether any input source option was used.
func (cfg *applyConfig) hasSource() bool {
	return cfg.baseSet || cfg.patchesSet || cfg.patchBytes != nil || cfg.patchFile != nil
}

// WithBase specifies the state to apply patches to.
// Plain map[string]any and []any values are converted with tree.FromGo.
func WithBase(state any) Option {
	return func(cfg *applyConfig) error {
		if draft.Is(state) {
			return &patcherrors.ConfigError{
				Option:  "WithBase",
				Message: "live drafts cannot be combined with options; use ApplyDraft",
			}
		}
		cfg.base = state
		cfg.baseSet = true
		return nil
	}
}

// WithPatches specifies an already-decoded patch list as the patch source.
func WithPatches(patches patch.Patches) Option {
	return func(cfg *applyConfig) error {
		cfg.patches = patches
		cfg.patchesSet = true
		return nil
	}
}

// WithPatchBytes specifies a YAML or JSON patch document as the patch source.
func WithPatchBytes(data []byte) Option {
	return func(cfg *applyConfig) error {
		if data == nil {
			return &patcherrors.ConfigError{Option: "WithPatchBytes", Message: "data cannot be nil"}
		}
		cfg.patchBytes = data
		return nil
	}
}

// WithPatchFile specifies a YAML or JSON patch file as the patch source.
func WithPatchFile(path string) Option {
	return func(cfg *applyConfig) error {
		if path == "" {
			return &patcherrors.ConfigError{Option: "WithPatchFile", Message: "path cannot be empty"}
		}
		cfg.patchFile = &path
		return nil
	}
}

// WithProducer sets the drafting subsystem used for non-draft states.
func WithProducer(p draft.Producer) Option {
	return func(cfg *applyConfig) error {
		if p == nil {
			return &patcherrors.ConfigError{Option: "WithProducer", Message: "producer cannot be nil"}
		}
		cfg.producer = p
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l patch.Logger) Option {
	return func(cfg *applyConfig) error {
		if l == nil {
			return &patcherrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// WithReservedKeys replaces the segments that may not be traversed through
// records and sequences. An empty list disables the check.
func WithReservedKeys(keys ...string) Option {
	return func(cfg *applyConfig) error {
		cfg.reserved = append([]string{}, keys...)
		return nil
	}
}

// WithCallableReservedKeys replaces the segments that may not be traversed
// through func values. An empty list disables the check.
func WithCallableReservedKeys(keys ...string) Option {
	return func(cfg *applyConfig) error {
		cfg.callable = append([]string{}, keys...)
		return nil
	}
}

// WithStringUnits selects how string edit indices are counted.
func WithStringUnits(u StringUnits) Option {
	return func(cfg *applyConfig) error {
		if u != RuneUnits && u != UTF16Units {
			return &patcherrors.ConfigError{Option: "WithStringUnits", Value: u, Message: "unknown string units"}
		}
		cfg.units = u
		return nil
	}
}

// WithStrictStrings makes string edits without an enclosing container an
// error instead of a warning.
func WithStrictStrings(strict bool) Option {
	return func(cfg *applyConfig) error {
		cfg.strictStrings = strict
		return nil
	}
}

// WithMetrics records replay activity in m.
func WithMetrics(m *Metrics) Option {
	return func(cfg *applyConfig) error {
		cfg.metrics = m
		return nil
	}
}

// WithValidation runs patch.Validate before replay and fails on the first
// invalid patch.
func WithValidation(enabled bool) Option {
	return func(cfg *applyConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*applyConfig, error) {
	cfg := &applyConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applier builds an Applier from the settings in cfg.
func (cfg *applyConfig) applier() *Applier {
	a := New()
	if cfg.producer != nil {
		a.Producer = cfg.producer
	}
	if cfg.logger != nil {
		a.Logger = cfg.logger
	}
	if cfg.reserved != nil {
		a.ReservedKeys = cfg.reserved
	}
	if cfg.callable != nil {
		a.CallableReservedKeys = cfg.callable
	}
	a.StringUnits = cfg.units
	a.StrictStrings = cfg.strictStrings
	a.Metrics = cfg.metrics
	a.Validate = cfg.validate
	return a
}

// loadPatches returns the patch list from whichever source was configured.
func (cfg *applyConfig) loadPatches() (patch.Patches, error) {
	switch {
	case cfg.patchFile != nil:
		return patch.ParseFile(*cfg.patchFile)
	case cfg.patchBytes != nil:
		return patch.Parse(cfg.patchBytes)
	default:
		return cfg.patches, nil
	}
}

// ApplyWithOptions applies patches using functional options.
//
// WithBase is required, as is exactly one of WithPatches, WithPatchBytes or
// WithPatchFile:
//
//	result, err := applier.ApplyWithOptions(
//	    applier.WithBase(state),
//	    applier.WithPatchFile("changes.yaml"),
//	    applier.WithValidation(true),
//	)
func ApplyWithOptions(opts ...Option) (*ApplyResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	if !cfg.baseSet {
		return nil, &patcherrors.ConfigError{Option: "base", Message: "must specify a base state (use WithBase)"}
	}
	if err := options.ValidateSingleInputSource("patch",
		options.Source{Option: "WithPatches", Set: cfg.patchesSet},
		options.Source{Option: "WithPatchBytes", Set: cfg.patchBytes != nil},
		options.Source{Option: "WithPatchFile", Set: cfg.patchFile != nil},
	); err != nil {
		return nil, err
	}

	patches, err := cfg.loadPatches()
	if err != nil {
		return nil, fmt.Errorf("applier: failed to load patches: %w", err)
	}

	return cfg.applier().Apply(cfg.base, patches)
}
