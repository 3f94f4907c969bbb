package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestFactory(t *testing.T) *MetricsFactory {
	t.Helper()

	factory, err := NewMetricsFactory(noop.NewMeterProvider().Meter("test"), nil)
	require.NoError(t, err)

	return factory
}

func TestNewMetricsFactory_NilMeter(t *testing.T) {
	t.Parallel()

	_, err := NewMetricsFactory(nil, nil)
	require.ErrorIs(t, err, ErrNilMeter)
}

func TestNewNopFactory(t *testing.T) {
	t.Parallel()

	factory := NewNopFactory()
	require.NotNil(t, factory)

	counter, err := factory.Counter(MetricFailuresRaised)
	require.NoError(t, err)
	require.NoError(t, counter.AddOne(context.Background()))
}

func TestCounter_Cached(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	first, err := factory.Counter(MetricFailuresRaised)
	require.NoError(t, err)

	second, err := factory.Counter(MetricFailuresRaised)
	require.NoError(t, err)

	require.Equal(t, first.name, second.name)
}

func TestCounterBuilder_WithLabelsDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)

	base, err := factory.Counter(MetricFailuresRaised)
	require.NoError(t, err)

	labeled := base.WithLabels(map[string]string{"policy": "terminate"})
	require.Empty(t, base.attrs)
	require.Len(t, labeled.attrs, 1)

	attributed := labeled.WithAttributes(attribute.String("file", "vec.rs"))
	require.Len(t, labeled.attrs, 1)
	require.Len(t, attributed.attrs, 2)

	require.NoError(t, attributed.AddOne(context.Background()))
}

func TestCounterBuilder_NilCounter(t *testing.T) {
	t.Parallel()

	builder := &CounterBuilder{}
	require.ErrorIs(t, builder.AddOne(context.Background()), ErrNilCounter)
}
