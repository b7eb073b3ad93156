// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"code.hybscloud.com/either"
	"testing"
)

func TestAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		e := either.Left[int, int](42)
		_, _ = e.GetLeft()
		_, _ = e.GetRight()
	})
	if allocs > 0 {
		t.Errorf("Left+Get allocs = %v; want 0", allocs)
	}

	allocs2 := testing.AllocsPerRun(100, func() {
		_ = either.Right[int](42).Swap().Swap()
	})
	if allocs2 > 0 {
		t.Errorf("Swap allocs = %v; want 0", allocs2)
	}

	allocs3 := testing.AllocsPerRun(100, func() {
		_ = either.Fold(either.Right[int](42),
			func(x int) int { return x - 1 },
			func(x int) int { return x + 1 },
		)
	})
	if allocs3 > 0 {
		t.Errorf("Fold allocs = %v; want 0", allocs3)
	}
}
