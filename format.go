// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"strings"
)

// String returns the expanded prefix of c, followed by "..." if the rest of
// c is still unexpanded: for example "chain[1 2 ...]". It never forces c,
// and does not return on a cyclic chain.
func (c *Chain[T]) String() string {
	var sb strings.Builder
	sb.WriteString("chain[")
	sep := ""
	for {
		next, ok := c.back.(*Chain[T])
		if !ok {
			break
		}
		sb.WriteString(sep)
		fmt.Fprint(&sb, c.front)
		sep = " "
		c = next
	}
	if !c.IsExpanded() {
		sb.WriteString(sep)
		sb.WriteString("...")
	}
	sb.WriteByte(']')
	return sb.String()
}
