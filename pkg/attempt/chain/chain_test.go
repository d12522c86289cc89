package chain

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/attempt/pkg/attempt"
)

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue(7).Result()
	require.True(t, out.IsSuccess())
	require.Equal(t, 7, out.Result())
}

func TestEval_CapturesError(t *testing.T) {
	t.Parallel()
	fault := errors.New("boom")

	out := Eval(func() (int, error) { return 0, fault }).Result()
	require.True(t, out.IsFailure())
	require.Equal(t, fault, out.Err())
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	fault := errors.New("boom")

	called := false
	out := Start(attempt.Failure[int](fault)).
		Then(func(v int) attempt.Try[int] {
			called = true
			return attempt.Success(v + 1)
		}).
		Result()

	require.False(t, called, "onSuccess must not run after failure")
	require.Equal(t, fault, out.Err())
}

func TestThenTry_AndMap(t *testing.T) {
	t.Parallel()

	out := FromValue(4).
		ThenTry(func(v int) (int, error) { return v * v, nil }).
		Map(func(v int) int { return v + 1 }).
		Result()

	require.True(t, out.IsSuccess())
	require.Equal(t, 17, out.Result())
}

func TestFilter_SentinelOnReject(t *testing.T) {
	t.Parallel()

	out := FromValue(5).
		Filter(func(v int) bool { return v > 10 }).
		Result()

	require.True(t, out.IsFailure())
	require.ErrorIs(t, out.Err(), attempt.ErrPredicateRejected)
}

func TestHandle_RecoversInChain(t *testing.T) {
	t.Parallel()
	fault := errors.New("timeout")

	out := Start(attempt.Failure[int](fault)).
		Handle(attempt.OnIs(fault, func(error) int { return -1 })).
		Map(func(v int) int { return v * 2 }).
		Result()

	require.True(t, out.IsSuccess())
	require.Equal(t, -2, out.Result())
}

func TestRescue_ReplacesFailure(t *testing.T) {
	t.Parallel()
	fault := errors.New("boom")

	out := Start(attempt.Failure[int](fault)).
		Rescue(attempt.OnAny(func(error) attempt.Try[int] {
			return attempt.Success(3)
		})).
		Result()

	require.True(t, out.IsSuccess())
	require.Equal(t, 3, out.Result())
}

func TestTee_SideEffects(t *testing.T) {
	t.Parallel()
	fault := errors.New("boom")

	var seen int
	var seenErr error

	FromValue(5).Tee(func(v int) { seen = v }, func(err error) { seenErr = err })
	require.Equal(t, 5, seen)
	require.NoError(t, seenErr)

	Start(attempt.Failure[int](fault)).Tee(func(v int) { seen = -1 }, func(err error) { seenErr = err })
	require.Equal(t, 5, seen)
	require.Equal(t, fault, seenErr)
}

func TestEnsure_RunsOnBothVariants(t *testing.T) {
	t.Parallel()

	count := 0
	FromValue(1).Ensure(func() { count++ })
	Start(attempt.Failure[int](errors.New("boom"))).Ensure(func() { count++ })
	require.Equal(t, 2, count)
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	fault := errors.New("boom")

	out := Start(attempt.Failure[int](fault)).
		Or(Start(attempt.Failure[int](errors.New("also"))), FromValue(9)).
		Result()
	require.True(t, out.IsSuccess())
	require.Equal(t, 9, out.Result())

	kept := FromValue(1).Or(FromValue(2)).Result()
	require.Equal(t, 1, kept.Result())

	failed := Start(attempt.Failure[int](fault)).
		Or(Start(attempt.Failure[int](errors.New("also")))).
		Result()
	require.Equal(t, fault, failed.Err())
}

func TestAnd_JoinsFaults(t *testing.T) {
	t.Parallel()

	out := Start(attempt.Failure[int](errors.New("first"))).
		And(FromValue(2), Start(attempt.Failure[int](errors.New("second")))).
		Result()

	require.True(t, out.IsFailure())
	errs := attempt.GetErrors(out.Err())
	require.Len(t, errs, 2)
	require.Equal(t, "first", errs[0].Error())
	require.Equal(t, "second", errs[1].Error())

	ok := FromValue(1).And(FromValue(2)).Result()
	require.True(t, ok.IsSuccess())
	require.Equal(t, 2, ok.Result())
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()

	out := Map(
		ThenTry(FromValue("12"), strconv.Atoi),
		func(v int) string { return "val:" + strconv.Itoa(v*2) },
	).Result()

	require.True(t, out.IsSuccess())
	require.Equal(t, "val:24", out.Result())
}

// TestParsePipeline drives a whole parse pipeline through the chain API the
// way callers compose it in practice.
func TestParsePipeline(t *testing.T) {
	t.Parallel()

	inputs := []string{"10", "5", "bad", "", "-3"}
	results := make([]string, 0, len(inputs))

	for _, in := range inputs {
		c := FromValue(in).
			Filter(func(s string) bool { return strings.TrimSpace(s) != "" })

		parsed := ThenTry(c, strconv.Atoi).
			Filter(func(v int) bool { return v > 0 }).
			Map(func(v int) int { return v * 10 })

		results = append(results, Finally(parsed,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(err error) string { return "invalid" }))
	}

	assert.Equal(t, []string{"ok:100", "ok:50", "invalid", "invalid", "invalid"}, results)

	invalid := 0
	for _, r := range results {
		if r == "invalid" {
			invalid++
		}
	}
	assert.Equal(t, 3, invalid)
}
