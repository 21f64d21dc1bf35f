package expr

import (
	"cmp"
	"math"

	"github.com/numgo-ml/numgo/internal/array"
)

// Number is the constraint for arithmetic element types.
type Number = array.Number

// Real is the constraint for floating-point element types.
type Real interface {
	~float32 | ~float64
}

// Stateless function objects used as per-element payloads. Any function
// of a matching signature works; these cover the common cases.

// Add returns x + y.
func Add[T Number](x, y T) T { return x + y }

// Sub returns x - y.
func Sub[T Number](x, y T) T { return x - y }

// Mul returns x * y.
func Mul[T Number](x, y T) T { return x * y }

// Div returns x / y.
func Div[T Number](x, y T) T { return x / y }

// Neg returns -x.
func Neg[T Number](x T) T { return -x }

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Minimum returns the smaller of x and y.
func Minimum[T cmp.Ordered](x, y T) T { return min(x, y) }

// Maximum returns the larger of x and y.
func Maximum[T cmp.Ordered](x, y T) T { return max(x, y) }

// Less returns x < y.
func Less[T cmp.Ordered](x, y T) bool { return x < y }

// LessEqual returns x <= y.
func LessEqual[T cmp.Ordered](x, y T) bool { return x <= y }

// Greater returns x > y.
func Greater[T cmp.Ordered](x, y T) bool { return x > y }

// GreaterEqual returns x >= y.
func GreaterEqual[T cmp.Ordered](x, y T) bool { return x >= y }

// Equal returns x == y.
func Equal[T comparable](x, y T) bool { return x == y }

// NotEqual returns x != y.
func NotEqual[T comparable](x, y T) bool { return x != y }

// And returns x && y.
func And(x, y bool) bool { return x && y }

// Or returns x || y.
func Or(x, y bool) bool { return x || y }

// Not returns !x.
func Not(x bool) bool { return !x }

// Float64 payloads over the standard math library, for use with Map and
// the vectorization adapter.
var (
	Exp  = math.Exp
	Log  = math.Log
	Sqrt = math.Sqrt
	Sin  = math.Sin
	Cos  = math.Cos
	Tanh = math.Tanh
)
