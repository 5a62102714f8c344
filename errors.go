// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"errors"
	"strconv"
)

// Errors reported by chain operations.
// Contract violations on the panicking accessors ([Chain.Head],
// [Chain.Tail]) and in the forcing engine panic with these values;
// recover and match them with [errors.Is].
var (
	// ErrEmpty is the panic value of Head and Tail on an empty chain.
	ErrEmpty = errors.New("chain: empty chain")

	// ErrIndexOutOfRange matches every [*IndexError].
	ErrIndexOutOfRange = errors.New("chain: index out of range")

	// ErrMalformedDeferred is the panic value of forcing a [Deferred] chain
	// whose computation returned nil.
	ErrMalformedDeferred = errors.New("chain: deferred computation returned nil")

	// ErrCycle is the panic value of forcing a [Deferred] chain whose
	// computation needs, directly or indirectly, the node being forced.
	ErrCycle = errors.New("chain: deferred computation depends on itself")

	// ErrFailedDeferred is the panic value of forcing a [Deferred] chain
	// whose computation panicked on an earlier force.
	ErrFailedDeferred = errors.New("chain: deferred computation failed earlier")

	// ErrUnequalLength is the panic value of forcing a [ZipStrict] chain
	// over inputs of different lengths.
	ErrUnequalLength = errors.New("chain: zipped chains have unequal length")
)

// IndexError reports a position outside a chain.
// Index is the position as the caller passed it, negative or not.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return "chain: index " + strconv.Itoa(e.Index) + " out of range"
}

// Is reports whether target is [ErrIndexOutOfRange].
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
