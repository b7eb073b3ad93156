// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a generic two-case disjoint union.
//
// [Either] holds exactly one of two values, tagged Left or Right.
// Values are immutable: every operation returns a new Either.
// None of the operations fail; an absent side is reported by a false
// second result, never by a panic or an error.
//
// # Construction and Inspection
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Projections (value, ok)
//   - [Either.LeftOr], [Either.RightOr]: Projections with a fallback
//   - [Either.Get]: Unpack both slots and the tag
//
// # Transformation and Reduction
//
//   - [Either.Swap]: Exchange Left and Right; an involution
//   - [Fold]: Apply exactly one of two functions, by side
//
// # kont Interop
//
// Error runners in [code.hybscloud.com/kont] return [kont.Either].
//
//   - [FromKont]: kont.Either[L, R] → Either[L, R]
//   - [Either.Kont]: Either[L, R] → kont.Either[L, R]
//   - [RunError]: Run a kont computation with the Error effect, returns [Either]
//
// # Example
//
//	e := either.Left[string, int]("not a number")
//	msg := either.Fold(e,
//		func(s string) string { return "error: " + s },
//		strconv.Itoa,
//	)
//	// msg == "error: not a number"
//
//	n, ok := e.Swap().GetRight()
//	// n == "not a number", ok == true
package either
