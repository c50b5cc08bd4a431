package stage

import (
	"context"
	"strconv"
	"testing"

	"golang.org/x/time/rate"

	"github.com/verdict-io/verdict/pkg/verdict"
)

type stageFault struct {
	name string
}

func succeedWith[In, Out any](out Out, count *int) Func[In, Out, *stageFault] {
	return func(ctx context.Context, in In) verdict.Result[Out, *stageFault] {
		*count++
		return verdict.Success[Out, *stageFault](out)
	}
}

func failWith[In, Out any](f *stageFault, count *int) Func[In, Out, *stageFault] {
	return func(ctx context.Context, in In) verdict.Result[Out, *stageFault] {
		*count++
		return verdict.Fail[Out](f)
	}
}

func TestThen_RunsSecondOnSuccess(t *testing.T) {
	t.Parallel()

	parse := func(ctx context.Context, raw string) verdict.Result[int, *stageFault] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return verdict.Fail[int](&stageFault{name: "parse"})
		}
		return verdict.Success[int, *stageFault](n)
	}
	double := func(ctx context.Context, n int) verdict.Result[int, *stageFault] {
		return verdict.Success[int, *stageFault](n * 2)
	}

	res := Then(parse, double)(context.Background(), "8")

	if !res.IsSuccess() || res.Value() != 16 {
		t.Fatalf("expected success 16, got %+v", res)
	}
}

func TestThen_ShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()

	fail := &stageFault{name: "first"}
	firstCalls, secondCalls := 0, 0

	composed := Then(failWith[string, int](fail, &firstCalls), succeedWith[int, int](99, &secondCalls))
	res := composed(context.Background(), "in")

	if secondCalls != 0 {
		t.Fatalf("second stage must not run after a failure")
	}
	if firstCalls != 1 {
		t.Fatalf("expected one invocation of the first stage, got %d", firstCalls)
	}
	if !res.IsFailure() || res.Err() != fail {
		t.Fatalf("expected the first stage's failure by identity, got %+v", res)
	}
}

func TestFallback_SeesInputAndFailure(t *testing.T) {
	t.Parallel()

	fail := &stageFault{name: "primary"}
	primaryCalls := 0

	recovered := Fallback(failWith[string, string](fail, &primaryCalls),
		func(ctx context.Context, in string, e *stageFault) verdict.Result[string, *stageFault] {
			return verdict.Success[string, *stageFault](in + " via fallback after " + e.name)
		})

	res := recovered(context.Background(), "doc")

	if !res.IsSuccess() || res.Value() != "doc via fallback after primary" {
		t.Fatalf("expected the fallback result, got %+v", res)
	}
}

func TestFallback_SkippedOnSuccess(t *testing.T) {
	t.Parallel()

	primaryCalls := 0
	recovered := Fallback(succeedWith[string, string]("fine", &primaryCalls),
		func(ctx context.Context, in string, e *stageFault) verdict.Result[string, *stageFault] {
			t.Fatalf("fallback ran on a success")
			return verdict.Fail[string](e)
		})

	res := recovered(context.Background(), "doc")

	if !res.IsSuccess() || res.Value() != "fine" {
		t.Fatalf("expected primary success to pass through, got %+v", res)
	}
}

func TestRetry_StopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	flaky := func(ctx context.Context, in int) verdict.Result[int, *stageFault] {
		calls++
		if calls < 3 {
			return verdict.Fail[int](&stageFault{name: "flaky"})
		}
		return verdict.Success[int, *stageFault](in)
	}

	res := Retry(flaky, 5)(context.Background(), 7)

	if !res.IsSuccess() || res.Value() != 7 {
		t.Fatalf("expected eventual success, got %+v", res)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetry_ReturnsLastFailure(t *testing.T) {
	t.Parallel()

	fail := &stageFault{name: "always"}
	calls := 0

	res := Retry(failWith[int, int](fail, &calls), 2)(context.Background(), 1)

	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if !res.IsFailure() || res.Err() != fail {
		t.Fatalf("expected the last failure, got %+v", res)
	}
}

func TestRetry_StopsOnDoneContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fail := &stageFault{name: "always"}
	calls := 0

	res := Retry(failWith[int, int](fail, &calls), 5)(ctx, 1)

	if calls != 1 {
		t.Fatalf("expected a single attempt under a done context, got %d", calls)
	}
	if !res.IsFailure() {
		t.Fatalf("expected the failure to surface")
	}
}

func TestThrottled_RunsAfterToken(t *testing.T) {
	t.Parallel()

	calls := 0
	throttled := Throttled(succeedWith[int, int](4, &calls),
		rate.NewLimiter(rate.Inf, 0),
		func(err error) *stageFault { return &stageFault{name: "wait"} })

	res := throttled(context.Background(), 4)

	if !res.IsSuccess() || res.Value() != 4 || calls != 1 {
		t.Fatalf("expected the stage to run once, got %+v after %d calls", res, calls)
	}
}

func TestThrottled_WaitErrorBecomesFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	// burst 0 makes Wait fail without blocking
	throttled := Throttled(succeedWith[int, int](4, &calls),
		rate.NewLimiter(1, 0),
		func(err error) *stageFault { return &stageFault{name: "throttle: " + err.Error()} })

	res := throttled(context.Background(), 4)

	if calls != 0 {
		t.Fatalf("stage must not run when the wait fails")
	}
	if !res.IsFailure() {
		t.Fatalf("expected a throttle failure")
	}
}
