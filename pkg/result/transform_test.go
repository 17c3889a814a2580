package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outcome-kit/outcome/pkg/option"
	"github.com/outcome-kit/outcome/pkg/result"
)

func TestMapOk(t *testing.T) {
	t.Parallel()

	r := result.Map(result.Ok[string](21), func(x int) int { return x * 2 })

	assert.Equal(t, result.Ok[string](42), r)
}

func TestMapChained(t *testing.T) {
	t.Parallel()

	inc := func(x int) int { return x + 1 }
	tenfold := func(x int) int { return x * 10 }

	r := result.Map(result.Map(result.Ok[string](3), inc), tenfold)

	assert.Equal(t, result.Ok[string](40), r)
}

func TestMapError_PassesOkThrough(t *testing.T) {
	t.Parallel()

	r := result.MapError(result.Ok[string](42), func(e string) string { return "more " + e })

	assert.Equal(t, result.Ok[string](42), r)
}

func TestMapError_TransformsPayload(t *testing.T) {
	t.Parallel()

	r := result.MapError(result.Err[int]("oops"), func(e string) string { return "more " + e })

	assert.Equal(t, result.Err[int]("more oops"), r)
}

func TestMapOnError_Untouched(t *testing.T) {
	t.Parallel()

	r := result.Err[int]("boom")

	got := result.Map(r, func(x int) int {
		t.Fatalf("mapper must not run for Error")
		return x
	})

	assert.Equal(t, r, got)
}

func TestMap2(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }

	assert.Equal(t, result.Ok[string](30),
		result.Map2(result.Ok[string](10), result.Ok[string](20), add))
	assert.Equal(t, result.Err[int]("left"),
		result.Map2(result.Err[int]("left"), result.Ok[string](20), add))
	assert.Equal(t, result.Err[int]("right"),
		result.Map2(result.Ok[string](10), result.Err[int]("right"), add))
	// first error wins
	assert.Equal(t, result.Err[int]("left"),
		result.Map2(result.Err[int]("left"), result.Err[int]("right"), add))
}

func TestBindOk(t *testing.T) {
	t.Parallel()

	half := func(x int) result.Result[int, string] {
		if x%2 != 0 {
			return result.Err[int]("odd")
		}
		return result.Ok[string](x / 2)
	}

	assert.Equal(t, result.Ok[string](21), result.Bind(result.Ok[string](42), half))
	assert.Equal(t, result.Err[int]("odd"), result.Bind(result.Ok[string](7), half))
}

func TestBindError_ShortCircuits(t *testing.T) {
	t.Parallel()

	r := result.Err[int]("boom")

	got := result.Bind(r, func(int) result.Result[int, string] {
		t.Fatalf("binder must not run for Error")
		return r
	})

	assert.Equal(t, r, got)
}

func TestMergeOk(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, result.Merge(result.Ok[int](42)))
}

func TestMergeError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "err", result.Merge(result.Err[string]("err")))
}

type parent interface{ isParent() }

type child struct{ X int }

func (child) isParent() {}

func TestMergeWidened(t *testing.T) {
	t.Parallel()

	// Both arms share the parent interface; merging preserves the
	// concrete value.
	r := result.Ok[parent, parent](child{X: 42})

	assert.Equal(t, child{X: 42}, result.Merge(r))
}

func TestOrElseTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[int](42),
		result.OrElseTo(result.Ok[string](42), result.Err[int](7)))
	assert.Equal(t, result.Err[int](7),
		result.OrElseTo(result.Err[int]("boom"), result.Err[int](7)))
}

func TestOrElseWithTo(t *testing.T) {
	t.Parallel()

	got := result.OrElseWithTo(result.Err[int]("boom"), func(e string) result.Result[int, int] {
		return result.Err[int](len(e))
	})

	assert.Equal(t, result.Err[int](4), got)
}

func TestOfOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[string](42), result.OfOption(option.Some(42), "oops"))
	assert.Equal(t, result.Err[int]("oops"), result.OfOption(option.None[int](), "oops"))
}

func TestOfOptionWith(t *testing.T) {
	t.Parallel()

	ok := result.OfOptionWith(option.Some(42), func() string {
		t.Fatalf("error builder must not run for Some")
		return ""
	})
	assert.Equal(t, result.Ok[string](42), ok)

	assert.Equal(t, result.Err[int]("oops"),
		result.OfOptionWith(option.None[int](), func() string { return "oops" }))
}

func TestTupleBridges(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	assert.Equal(t, result.Ok[error](42), result.FromTuple(42, nil))
	assert.Equal(t, result.Err[int, error](boom), result.FromTuple(0, boom))

	v, err := result.ToTuple(result.Ok[error](42))
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = result.ToTuple(result.Err[int, error](boom))
	assert.ErrorIs(t, err, boom)
}

func TestEqualHelper(t *testing.T) {
	t.Parallel()

	// slice payloads are not comparable with ==
	assert.True(t, result.Equal(result.Ok[string]([]int{1, 2}), result.Ok[string]([]int{1, 2})))
	assert.False(t, result.Equal(result.Ok[string]([]int{1, 2}), result.Ok[string]([]int{2, 1})))
	assert.False(t, result.Equal(result.Ok[string]([]int{}), result.Err[[]int]("boom")))
	assert.True(t, result.Equal(result.Err[[]int]("boom"), result.Err[[]int]("boom")))
}
