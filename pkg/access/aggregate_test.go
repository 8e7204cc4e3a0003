package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckAllServices_PreservesOrder(t *testing.T) {
	calls := []NamedCall{
		{
			Name: "Service One",
			Call: func(ctx context.Context) (any, error) {
				time.Sleep(30 * time.Millisecond)
				return "one", nil
			},
		},
		{
			Name: "Service Two",
			Call: func(ctx context.Context) (any, error) {
				return nil, NewResponseError(500, "")
			},
		},
		{
			Name: "API Gateway",
			Call: func(ctx context.Context) (any, error) {
				time.Sleep(10 * time.Millisecond)
				return map[string]string{"status": "UP"}, nil
			},
		},
	}

	outcomes := CheckAllServices(context.Background(), calls)

	require.Len(t, outcomes, 3)
	assert.Equal(t, Outcome{Service: "Service One", Status: StatusOnline, Data: "one"}, outcomes[0])
	assert.Equal(t, Outcome{Service: "Service Two", Status: StatusOffline, Data: "error 500: Internal Server Error"}, outcomes[1])
	assert.Equal(t, "API Gateway", outcomes[2].Service)
	assert.Equal(t, StatusOnline, outcomes[2].Status)
}

func TestCheckAllServices_RunsConcurrently(t *testing.T) {
	slow := func(ctx context.Context) (any, error) {
		time.Sleep(100 * time.Millisecond)
		return "ok", nil
	}
	calls := []NamedCall{{Name: "a", Call: slow}, {Name: "b", Call: slow}, {Name: "c", Call: slow}}

	start := time.Now()
	outcomes := CheckAllServices(context.Background(), calls)

	assert.Len(t, outcomes, 3)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestCheckAllServices_RecoversPanic(t *testing.T) {
	calls := []NamedCall{
		{Name: "broken", Call: func(ctx context.Context) (any, error) { panic("nil map") }},
		{Name: "fine", Call: func(ctx context.Context) (any, error) { return "ok", nil }},
	}

	outcomes := CheckAllServices(context.Background(), calls)

	assert.Equal(t, StatusOffline, outcomes[0].Status)
	assert.Equal(t, "request error: panic: nil map", outcomes[0].Data)
	assert.Equal(t, StatusOnline, outcomes[1].Status)
}

func TestCheckAllServices_Empty(t *testing.T) {
	assert.Empty(t, CheckAllServices(context.Background(), nil))
}

func TestSummarize(t *testing.T) {
	online := Outcome{Status: StatusOnline}
	offline := Outcome{Status: StatusOffline}

	testCases := []struct {
		name     string
		input    []Outcome
		expected AggregateStatus
	}{
		{"empty", nil, AggregateStatus{}},
		{"all online", []Outcome{online, online, online}, AggregateStatus{Total: 3, Online: 3, Offline: 0, HealthPercentage: 100}},
		{"two of three", []Outcome{online, offline, online}, AggregateStatus{Total: 3, Online: 2, Offline: 1, HealthPercentage: 67}},
		{"one of three", []Outcome{offline, online, offline}, AggregateStatus{Total: 3, Online: 1, Offline: 2, HealthPercentage: 33}},
		{"all offline", []Outcome{offline, offline}, AggregateStatus{Total: 2, Online: 0, Offline: 2, HealthPercentage: 0}},
		{"checking counts as not online", []Outcome{online, {Status: StatusChecking}}, AggregateStatus{Total: 2, Online: 1, Offline: 1, HealthPercentage: 50}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Summarize(tc.input)
			assert.Equal(t, tc.expected, res)
			assert.Equal(t, res.Total, res.Online+res.Offline)
			assert.GreaterOrEqual(t, res.HealthPercentage, 0)
			assert.LessOrEqual(t, res.HealthPercentage, 100)
			assert.Equal(t, res, Summarize(tc.input))
		})
	}
}

func TestMeasureCall(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		res, err := MeasureCall(context.Background(), func(ctx context.Context) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return "two", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "two", res.Payload)
		assert.GreaterOrEqual(t, res.ElapsedMs(), int64(20))
	})
	t.Run("failure keeps original error and elapsed time", func(t *testing.T) {
		original := NewNoResponseError(errors.New("connection refused"))
		res, err := MeasureCall(context.Background(), func(ctx context.Context) (string, error) {
			time.Sleep(10 * time.Millisecond)
			return "", original
		})
		require.Error(t, err)
		var timed *TimedError
		require.ErrorAs(t, err, &timed)
		assert.ErrorIs(t, err, original)
		assert.GreaterOrEqual(t, timed.ElapsedMs(), int64(10))
		assert.Equal(t, timed.Elapsed, res.Elapsed)
		assert.Contains(t, err.Error(), "failed after")
		assert.Equal(t, NetworkUnreachableMessage, NormalizeError(err))
	})
}

func TestWithLogging(t *testing.T) {
	expected := errors.New("boom")
	call := WithLogging(zap.NewNop(), "Service One", func(ctx context.Context) (int, error) {
		return 0, expected
	})
	_, err := call(context.Background())
	assert.ErrorIs(t, err, expected)

	ok := WithLogging(zap.NewNop(), "Service One", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	res, err := ok(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, res)
}
