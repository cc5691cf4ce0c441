/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "fmt"

// Location is the position of a single character in the input. Line and
// Column are both 0-based; Column counts bytes from the last newline.
type Location struct {
	Line   uint
	Column uint
	Char   rune
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
