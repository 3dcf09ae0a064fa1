// SPDX-License-Identifier: Apache-2.0

package arraylist

import "math/bits"

// NextPow2 returns the smallest power of two greater than or equal to n.
// NextPow2(0) is 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
