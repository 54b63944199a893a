package applier

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	return m, reg
}

func TestMetricsRecordReplay(t *testing.T) {
	m, reg := newTestMetrics(t)

	_, err := Apply(map[string]any{"a": 1}, patch.Patches{
		{Op: patch.OpAdd, Path: patch.Path{"b"}, Value: 2},
		{Op: patch.OpAdd, Path: patch.Path{"c"}, Value: 3},
		{Op: patch.OpReplace, Path: patch.Path{"a"}, Value: 0},
		{Op: patch.OpRemove, Path: patch.Path{"missing"}},
	}, WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.patchesApplied.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.patchesApplied.WithLabelValues("replace")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.patchesSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warnings.WithLabelValues(string(WarnMissingKey))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.patchesPruned))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	n, err := testutil.GatherAndCount(reg, "treepatch_patches_applied_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetricsRecordPruned(t *testing.T) {
	m, _ := newTestMetrics(t)

	_, err := Apply(map[string]any{}, patch.Patches{
		{Op: patch.OpAdd, Path: patch.Path{"a"}, Value: 1},
		{Op: patch.OpAdd, Path: patch.Path{"b"}, Value: 1},
		{Op: patch.OpReplace, Path: patch.Path{}, Value: map[string]any{}},
	}, WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.patchesPruned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.patchesApplied.WithLabelValues("replace")))
}

func TestMetricsRecordFailures(t *testing.T) {
	m, _ := newTestMetrics(t)

	_, err := Apply(map[string]any{}, patch.Patches{
		{Op: patch.OpAdd, Path: patch.Path{"__proto__", "x"}, Value: 1},
	}, WithMetrics(m))
	require.Error(t, err)

	_, err = Apply(map[string]any{}, patch.Patches{{Op: "copy", Path: patch.Path{"x"}}}, WithMetrics(m))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("security")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("unknown_op")))
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	_, reg := newTestMetrics(t)

	_, err := NewMetrics(reg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, patcherrors.ErrConfig))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeApplied("add")
		m.observePruned(3)
		m.observeWarning(&ApplyWarning{Category: WarnMissingKey})
		m.observeFailure(errors.New("boom"))
		m.observeDuration(time.Now())
	})
}

func TestFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &patcherrors.SecurityError{}, want: "security"},
		{err: &ApplyError{Cause: &patcherrors.PathError{}}, want: "path"},
		{err: &patcherrors.OperationError{IsUnknown: true}, want: "unknown_op"},
		{err: &patcherrors.OperationError{}, want: "unsupported_op"},
		{err: &patcherrors.ValidationError{}, want: "validation"},
		{err: &patcherrors.ConfigError{}, want: "config"},
		{err: &patcherrors.ParseError{}, want: "parse"},
		{err: errors.New("boom"), want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, failureKind(tt.err))
		})
	}
}
