// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, the top bit of
// each byte flags a continuation; the ninth byte carries a full eight
// bits so that any uint64 fits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 1; count <= len(buffer) && count <= Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count-1])
		if Varint64MaximumBytes == count {
			return result | b<<shift, count
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	if value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}

// AppendUint64 - append a Varint64 to a buffer
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a Varint64(length) prefixed byte field
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a Varint64(length) prefixed string field
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// ReadBytes - read a Varint64(length) prefixed field
//
// returns a copy of the field data and the total bytes consumed,
// zero bytes consumed means the buffer was truncated or the length
// was outside minimum..maximum
func ReadBytes(buffer []byte, minimum int, maximum int) ([]byte, int) {
	length, n := ClippedVarint64(buffer, minimum, maximum)
	if 0 == n || n+length > len(buffer) {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length
}
