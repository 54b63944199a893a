package draft

import (
	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
)

// Recipe mutates a draft. Returning an error discards the draft.
type Recipe func(d *Draft) error

// Config controls a single Produce call.
type Config struct {
	// GeneratePatches asks the producer to record the patches that
	// reproduce the recipe's edits.
	GeneratePatches bool

	// Logger receives draft lifecycle logs. Nil means no logging.
	Logger patch.Logger
}

// Producer runs a recipe against a draft of base and publishes the result.
type Producer interface {
	Produce(base any, recipe Recipe, cfg Config) (any, error)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func(base any, recipe Recipe, cfg Config) (any, error)

// Produce implements Producer.
func (f ProducerFunc) Produce(base any, recipe Recipe, cfg Config) (any, error) {
	return f(base, recipe, cfg)
}

// COW is the default copy-on-write producer.
// It does not record patches; GeneratePatches is rejected.
type COW struct{}

// Produce implements Producer.
func (COW) Produce(base any, recipe Recipe, cfg Config) (any, error) {
	if cfg.GeneratePatches {
		return nil, &patcherrors.ConfigError{
			Option:  "GeneratePatches",
			Value:   true,
			Message: "the copy-on-write producer does not record patches",
		}
	}
	if recipe == nil {
		return base, nil
	}

	d := newDraft(base, cfg.Logger)
	if err := recipe(d); err != nil {
		d.committed = true
		return nil, err
	}
	return d.Commit()
}

var (
	_ Producer = COW{}
	_ Producer = ProducerFunc(nil)
)
