// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "fmt"

// Either represents a value that is either Left or Right.
//
// The zero value is Left holding the zero L.
// Only the slot selected by the tag is ever observed; the other slot
// stays zero, so Either of comparable types compares by variant and value.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// Get unpacks both slots. isRight reports which one is active;
// the inactive slot is the zero value.
func (e Either[L, R]) Get() (l L, r R, isRight bool) {
	return e.left, e.right, e.isRight
}

// LeftOr returns the Left value, or def if this is a Right value.
func (e Either[L, R]) LeftOr(def L) L {
	if !e.isRight {
		return e.left
	}
	return def
}

// RightOr returns the Right value, or def if this is a Left value.
func (e Either[L, R]) RightOr(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// Swap exchanges the sides: Left(l) becomes Right(l) and Right(r) becomes Left(r).
// Swap is an involution: e.Swap().Swap() == e.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{isRight: !e.isRight, left: e.right, right: e.left}
}

// String formats the value as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold calls onLeft or onRight with the active value and returns its result.
// Exactly one of the two functions is called, exactly once.
//
// Fold is a function rather than a method because Go methods cannot
// declare type parameters. A field accessor such as func(p Point) int
// { return p.X } folds like any other function.
func Fold[L, R, V any](e Either[L, R], onLeft func(L) V, onRight func(R) V) V {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
