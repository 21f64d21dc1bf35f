// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"cmp"

	"github.com/numgo-ml/numgo/internal/expr"
)

// Number is the constraint for arithmetic element types.
type Number = expr.Number

// Real is the constraint for floating-point element types.
type Real = expr.Real

// Stateless function objects for use as per-element payloads.

// Add returns x + y.
func Add[T Number](x, y T) T { return expr.Add(x, y) }

// Sub returns x - y.
func Sub[T Number](x, y T) T { return expr.Sub(x, y) }

// Mul returns x * y.
func Mul[T Number](x, y T) T { return expr.Mul(x, y) }

// Div returns x / y.
func Div[T Number](x, y T) T { return expr.Div(x, y) }

// Neg returns -x.
func Neg[T Number](x T) T { return expr.Neg(x) }

// Abs returns the absolute value of x.
func Abs[T Number](x T) T { return expr.Abs(x) }

// Minimum returns the smaller of x and y.
func Minimum[T cmp.Ordered](x, y T) T { return expr.Minimum(x, y) }

// Maximum returns the larger of x and y.
func Maximum[T cmp.Ordered](x, y T) T { return expr.Maximum(x, y) }

// Less returns x < y.
func Less[T cmp.Ordered](x, y T) bool { return expr.Less(x, y) }

// LessEqual returns x <= y.
func LessEqual[T cmp.Ordered](x, y T) bool { return expr.LessEqual(x, y) }

// Greater returns x > y.
func Greater[T cmp.Ordered](x, y T) bool { return expr.Greater(x, y) }

// GreaterEqual returns x >= y.
func GreaterEqual[T cmp.Ordered](x, y T) bool { return expr.GreaterEqual(x, y) }

// Equal returns x == y.
func Equal[T comparable](x, y T) bool { return expr.Equal(x, y) }

// NotEqual returns x != y.
func NotEqual[T comparable](x, y T) bool { return expr.NotEqual(x, y) }

// And returns x && y.
func And(x, y bool) bool { return expr.And(x, y) }

// Or returns x || y.
func Or(x, y bool) bool { return expr.Or(x, y) }

// Not returns !x.
func Not(x bool) bool { return expr.Not(x) }

// Float64 payloads over the standard math library.
var (
	Exp  = expr.Exp
	Log  = expr.Log
	Sqrt = expr.Sqrt
	Sin  = expr.Sin
	Cos  = expr.Cos
	Tanh = expr.Tanh
)
