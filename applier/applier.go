package applier

import (
	"slices"
	"time"

	"github.com/erraggy/treepatch/draft"
	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
	"github.com/erraggy/treepatch/tree"
)

// DefaultReservedKeys are the segments that may not be traversed through
// records and sequences.
var DefaultReservedKeys = []string{"__proto__", "constructor"}

// DefaultCallableReservedKeys are the segments that may not be traversed
// through func values.
var DefaultCallableReservedKeys = []string{"prototype"}

// Applier replays patch lists against states and drafts.
//
// An Applier holds configuration only and is safe for concurrent use once
// its fields are set.
type Applier struct {
	// Producer drafts non-draft states. Nil uses draft.COW.
	Producer draft.Producer

	// Logger receives per-patch debug logs and warnings. Nil disables logging.
	Logger patch.Logger

	// ReservedKeys are rejected while traversing records and sequences.
	// Nil uses DefaultReservedKeys; an empty slice disables the check.
	ReservedKeys []string

	// CallableReservedKeys are rejected while traversing func values.
	// Nil uses DefaultCallableReservedKeys; an empty slice disables the check.
	CallableReservedKeys []string

	// StringUnits selects how string edit indices are counted.
	StringUnits StringUnits

	// StrictStrings turns string edits without an enclosing container into
	// errors instead of warnings.
	StrictStrings bool

	// Validate runs patch.Validate before replay.
	Validate bool

	// Metrics records replay activity. Nil records nothing.
	Metrics *Metrics
}

// New creates a new Applier with default settings.
func New() *Applier {
	return &Applier{
		Producer:             draft.COW{},
		Logger:               patch.NopLogger{},
		ReservedKeys:         slices.Clone(DefaultReservedKeys),
		CallableReservedKeys: slices.Clone(DefaultCallableReservedKeys),
		StringUnits:          RuneUnits,
	}
}

// Apply replays patches against state and returns the produced state.
//
// A *draft.Draft is edited in place (see ApplyDraft). Any other state is
// drafted by the Producer; plain map[string]any, []any and map[any]any values
// are first converted with tree.FromGo. state itself is never modified, and
// on error nothing is published.
func (a *Applier) Apply(state any, patches patch.Patches) (*ApplyResult, error) {
	if d, ok := state.(*draft.Draft); ok {
		return a.ApplyDraft(d, patches)
	}

	start := time.Now()
	defer a.Metrics.observeDuration(start)

	if err := a.validate(patches); err != nil {
		a.Metrics.observeFailure(err)
		return nil, err
	}

	base := state
	switch state.(type) {
	case map[string]any, []any, map[any]any:
		base = tree.FromGo(state)
	}

	result := &ApplyResult{}
	producer := a.Producer
	if producer == nil {
		producer = draft.COW{}
	}
	out, err := producer.Produce(base, func(d *draft.Draft) error {
		return a.replay(d, patches, result)
	}, draft.Config{GeneratePatches: false, Logger: a.logger()})
	if err != nil {
		a.Metrics.observeFailure(err)
		a.logger().Error("apply failed", "error", err)
		return nil, err
	}

	result.State = out
	return result, nil
}

// ApplyDraft replays patches against a live draft, editing it in place.
//
// On error the draft is left partially edited and must be discarded.
func (a *Applier) ApplyDraft(d *draft.Draft, patches patch.Patches) (*ApplyResult, error) {
	start := time.Now()
	defer a.Metrics.observeDuration(start)

	if d == nil {
		return nil, &patcherrors.ConfigError{Option: "draft", Message: "draft cannot be nil"}
	}
	if d.Committed() {
		a.Metrics.observeFailure(draft.ErrFinalized)
		return nil, draft.ErrFinalized
	}
	if err := a.validate(patches); err != nil {
		a.Metrics.observeFailure(err)
		return nil, err
	}

	result := &ApplyResult{State: d}
	if err := a.replay(d, patches, result); err != nil {
		a.Metrics.observeFailure(err)
		a.logger().Error("apply failed", "error", err)
		return nil, err
	}
	return result, nil
}

// ApplyString applies a single character-range edit to s using the
// Applier's string units.
func (a *Applier) ApplyString(s string, p patch.Patch) (string, error) {
	return spliceString(s, p, a.StringUnits)
}

func (a *Applier) validate(patches patch.Patches) error {
	if !a.Validate {
		return nil
	}
	if errs := patch.Validate(patches); len(errs) > 0 {
		return &errs[0]
	}
	return nil
}

func (a *Applier) logger() patch.Logger {
	if a.Logger == nil {
		return patch.NopLogger{}
	}
	return a.Logger
}

func (a *Applier) reservedKeys() []string {
	if a.ReservedKeys == nil {
		return DefaultReservedKeys
	}
	return a.ReservedKeys
}

func (a *Applier) callableReservedKeys() []string {
	if a.CallableReservedKeys == nil {
		return DefaultCallableReservedKeys
	}
	return a.CallableReservedKeys
}

// Apply replays patches against state and returns the produced state.
//
// If state is a *draft.Draft it is edited in place and returned; combining a
// draft with options is rejected. Input source options (WithBase,
// WithPatches and friends) belong to ApplyWithOptions and are rejected here.
func Apply(state any, patches patch.Patches, opts ...Option) (any, error) {
	if d, ok := state.(*draft.Draft); ok {
		if len(opts) > 0 {
			return nil, &patcherrors.ConfigError{
				Option:  "opts",
				Message: "options cannot be combined with a live draft",
			}
		}
		if _, err := New().ApplyDraft(d, patches); err != nil {
			return nil, err
		}
		return d, nil
	}

	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.hasSource() {
		return nil, &patcherrors.ConfigError{
			Option:  "opts",
			Message: "input source options are only accepted by ApplyWithOptions",
		}
	}

	result, err := cfg.applier().Apply(state, patches)
	if err != nil {
		return nil, err
	}
	return result.State, nil
}

// ApplyDraft replays patches against a live draft with default settings and
// returns the same draft.
func ApplyDraft(d *draft.Draft, patches patch.Patches) (*draft.Draft, error) {
	if _, err := New().ApplyDraft(d, patches); err != nil {
		return nil, err
	}
	return d, nil
}
