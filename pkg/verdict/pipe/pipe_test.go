package pipe

import (
	"errors"
	"strconv"
	"testing"

	"github.com/verdict-io/verdict/pkg/verdict"
)

type opFault struct {
	op     string
	reason string
}

func TestAndThen_SuccessInvokesOnce(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](21)

	calls := 0
	out := AndThen(input, func(v int) verdict.Result[string, *opFault] {
		calls++
		return verdict.Success[string, *opFault](strconv.Itoa(v * 2))
	})

	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
	if !out.IsSuccess() || out.Value() != "42" {
		t.Fatalf("expected success \"42\", got %+v", out)
	}
}

func TestAndThen_SuccessReturnsExactlyFnResult(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](1)
	produced := verdict.Fail[string](&opFault{op: "later", reason: "boom"})

	out := AndThen(input, func(int) verdict.Result[string, *opFault] {
		return produced
	})

	if out != produced {
		t.Fatalf("expected the function's result to be returned unchanged")
	}
}

func TestAndThen_FailurePassesThroughByIdentity(t *testing.T) {
	t.Parallel()

	fail := &opFault{op: "load", reason: "missing"}
	input := verdict.Fail[int](fail)

	calls := 0
	out := AndThen(input, func(v int) verdict.Result[string, *opFault] {
		calls++
		return verdict.Success[string, *opFault]("never")
	})

	if calls != 0 {
		t.Fatalf("function must not run on a failure input, ran %d times", calls)
	}
	if !out.IsFailure() {
		t.Fatalf("expected failure to pass through")
	}
	if out.Err() != fail {
		t.Fatalf("expected the identical failure value, got %+v", out.Err())
	}
	if out.ID() != input.ID() {
		t.Fatalf("expected provenance to carry over")
	}
}

func TestAndThen_ChainShortCircuits(t *testing.T) {
	t.Parallel()

	fail := &opFault{op: "second", reason: "broken"}
	ran := make([]string, 0, 3)

	first := func(v int) verdict.Result[int, *opFault] {
		ran = append(ran, "first")
		return verdict.Success[int, *opFault](v + 1)
	}
	second := func(v int) verdict.Result[int, *opFault] {
		ran = append(ran, "second")
		return verdict.Fail[int](fail)
	}
	third := func(v int) verdict.Result[int, *opFault] {
		ran = append(ran, "third")
		return verdict.Success[int, *opFault](v * 10)
	}

	out := AndThen(AndThen(AndThen(verdict.Success[int, *opFault](0), first), second), third)

	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Fatalf("expected only first and second to run, ran %v", ran)
	}
	if !out.IsFailure() || out.Err() != fail {
		t.Fatalf("expected the original failure at the end of the chain")
	}
}

func TestOrElse_FailureRecovers(t *testing.T) {
	t.Parallel()

	input := verdict.Fail[int](&opFault{op: "load", reason: "missing"})

	out := OrElse(input, func(e *opFault) verdict.Result[int, error] {
		return verdict.Success[int, error](7)
	})

	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected recovery to a success, got %+v", out)
	}
}

func TestOrElse_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](5)

	calls := 0
	out := OrElse(input, func(e *opFault) verdict.Result[int, error] {
		calls++
		return verdict.Fail[int](errors.New("unused"))
	})

	if calls != 0 {
		t.Fatalf("recovery must not run on a success input")
	}
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected the success to pass through, got %+v", out)
	}
	if out.ID() != input.ID() {
		t.Fatalf("expected provenance to carry over")
	}
}

func TestTransform_Success(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](3)

	out := Transform(input, func(v int) string { return strconv.Itoa(v) })

	if !out.IsSuccess() || out.Value() != "3" {
		t.Fatalf("expected transformed success, got %+v", out)
	}
	if out.ID() != input.ID() {
		t.Fatalf("expected provenance to carry over")
	}
}

func TestTransform_IdentityYieldsEqualResult(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](11)

	out := Transform(input, func(v int) int { return v })

	if out != input {
		t.Fatalf("identity transform must yield an equal result")
	}
}

func TestTransform_FailurePassesThrough(t *testing.T) {
	t.Parallel()

	fail := &opFault{op: "parse", reason: "bad byte"}
	input := verdict.Fail[int](fail)

	out := Transform(input, func(v int) string { return "unused" })

	if !out.IsFailure() || out.Err() != fail {
		t.Fatalf("expected the identical failure value to pass through")
	}
}

func TestTransformError_Failure(t *testing.T) {
	t.Parallel()

	input := verdict.Fail[int](&opFault{op: "load", reason: "missing"})

	out := TransformError(input, func(e *opFault) string {
		return e.op + ": " + e.reason
	})

	if !out.IsFailure() || out.Err() != "load: missing" {
		t.Fatalf("expected mapped failure, got %+v", out)
	}
	if out.ID() != input.ID() {
		t.Fatalf("expected provenance to carry over")
	}
}

func TestTransformError_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	input := verdict.Success[int, *opFault](9)

	calls := 0
	out := TransformError(input, func(e *opFault) string {
		calls++
		return "unused"
	})

	if calls != 0 {
		t.Fatalf("error mapping must not run on a success input")
	}
	if !out.IsSuccess() || out.Value() != 9 {
		t.Fatalf("expected the success to pass through, got %+v", out)
	}
}

func TestTry_ConvertsErrorThroughWrap(t *testing.T) {
	t.Parallel()

	wrap := func(err error) *opFault { return &opFault{op: "atoi", reason: err.Error()} }

	good := Try(verdict.Success[string, *opFault]("17"), strconv.Atoi, wrap)
	if !good.IsSuccess() || good.Value() != 17 {
		t.Fatalf("expected parsed success, got %+v", good)
	}

	bad := Try(verdict.Success[string, *opFault]("seventeen"), strconv.Atoi, wrap)
	if !bad.IsFailure() || bad.Err().op != "atoi" {
		t.Fatalf("expected wrapped failure, got %+v", bad)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	onInvalid := func(v int) *opFault { return &opFault{op: "check", reason: strconv.Itoa(v)} }

	ok := Validate(verdict.Success[int, *opFault](4), even, onInvalid)
	if !ok.IsSuccess() {
		t.Fatalf("expected valid value to stay a success")
	}

	bad := Validate(verdict.Success[int, *opFault](5), even, onInvalid)
	if !bad.IsFailure() || bad.Err().reason != "5" {
		t.Fatalf("expected invalid value to fail, got %+v", bad)
	}

	fail := &opFault{op: "earlier"}
	through := Validate(verdict.Fail[int](fail), even, onInvalid)
	if !through.IsFailure() || through.Err() != fail {
		t.Fatalf("expected prior failure to pass through")
	}
}

func TestTapAndTapError(t *testing.T) {
	t.Parallel()

	seen := 0
	out := Tap(verdict.Success[int, *opFault](8), func(v int) { seen = v })
	if seen != 8 || !out.IsSuccess() {
		t.Fatalf("expected Tap to observe the success value")
	}

	var observed *opFault
	fail := &opFault{op: "load"}
	out2 := TapError(verdict.Fail[int](fail), func(e *opFault) { observed = e })
	if observed != fail || !out2.IsFailure() {
		t.Fatalf("expected TapError to observe the failure value")
	}

	Tap(verdict.Fail[int](fail), func(int) { t.Fatalf("Tap ran on a failure") })
	TapError(verdict.Success[int, *opFault](1), func(*opFault) { t.Fatalf("TapError ran on a success") })
}

func TestFinally(t *testing.T) {
	t.Parallel()

	msg := Finally(verdict.Success[int, *opFault](3),
		func(v int) string { return "ok " + strconv.Itoa(v) },
		func(e *opFault) string { return "failed " + e.op })
	if msg != "ok 3" {
		t.Fatalf("expected success handler result, got %q", msg)
	}

	msg = Finally(verdict.Fail[int](&opFault{op: "proc"}),
		func(v int) string { return "ok" },
		func(e *opFault) string { return "failed " + e.op })
	if msg != "failed proc" {
		t.Fatalf("expected failure handler result, got %q", msg)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	all := Collect([]verdict.Result[int, *opFault]{
		verdict.Success[int, *opFault](1),
		verdict.Success[int, *opFault](2),
		verdict.Success[int, *opFault](3),
	})
	if !all.IsSuccess() {
		t.Fatalf("expected success, got %+v", all)
	}
	if got := all.Value(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("expected values in order, got %v", got)
	}

	fail := &opFault{op: "mid"}
	broken := Collect([]verdict.Result[int, *opFault]{
		verdict.Success[int, *opFault](1),
		verdict.Fail[int](fail),
		verdict.Success[int, *opFault](3),
	})
	if !broken.IsFailure() || broken.Err() != fail {
		t.Fatalf("expected the first failure by identity, got %+v", broken)
	}
}
