// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "code.hybscloud.com/kont"

// Interop with the error effect of [code.hybscloud.com/kont].

// FromKont converts a [kont.Either] into an Either with the same side and value.
func FromKont[L, R any](e kont.Either[L, R]) Either[L, R] {
	if r, ok := e.GetRight(); ok {
		return Right[L](r)
	}
	l, _ := e.GetLeft()
	return Left[L, R](l)
}

// Kont converts e into a [kont.Either] with the same side and value.
// FromKont(e.Kont()) == e.
func (e Either[L, R]) Kont() kont.Either[L, R] {
	if e.isRight {
		return kont.Right[L](e.right)
	}
	return kont.Left[L, R](e.left)
}

// RunError runs an error-capable computation.
// A computation that performs [kont.Throw] yields Left with the thrown
// value; one that completes yields Right with its result.
func RunError[E, A any](m kont.Eff[A]) Either[E, A] {
	return FromKont(kont.RunError[E, A](m))
}
