package encoder

import "math"

// encodeVarint writes a signed, variable-length integer using the
// sign-magnitude scheme spec.md §4.5 defines:
//
//	m < 64:    one byte   s·0x80 | m
//	m < 8192:  two bytes  s·0x80 | 0x40 | (m>>8 & 0x1F), m & 0xFF
//	otherwise: a byte     s·0x80 | 0x60 | (k-1)   then k big-endian bytes of m
//
// where s is 1 for negative values and k = ceil(log256(m+1)).
func encodeVarint(v int64) []byte {
	sign := byte(0)
	m := v
	if v < 0 {
		sign = 1
		m = -v
	}

	switch {
	case m < 64:
		return []byte{sign<<7 | byte(m)}

	case m < 8192:
		return []byte{
			sign<<7 | 0x40 | byte((m>>8)&0x1F),
			byte(m & 0xFF),
		}

	default:
		k := requiredBytes(m)
		out := make([]byte, 1+k)
		out[0] = sign<<7 | 0x60 | byte(k-1)
		shift := 8 * (k - 1)
		for i := 0; i < k; i++ {
			out[1+i] = byte((m >> uint(shift)) & 0xFF)
			shift -= 8
		}
		return out
	}
}

// requiredBytes returns ceil(log256(m+1)), the minimum number of
// big-endian bytes needed to hold m.
func requiredBytes(m int64) int {
	k := int(math.Ceil(math.Log(float64(m)+1) / math.Log(256)))
	if k < 1 {
		k = 1
	}
	return k
}

// decodeVarint reads one varint from the front of b, returning its
// value and the number of bytes consumed. Used by round-trip tests.
func decodeVarint(b []byte) (int64, int) {
	first := b[0]
	sign := int64(1)
	if first&0x80 != 0 {
		sign = -1
	}
	switch {
	case first&0x60 == 0x60:
		k := int(first&0x1F) + 1
		var m int64
		for i := 0; i < k; i++ {
			m = m<<8 | int64(b[1+i])
		}
		return sign * m, 1 + k
	case first&0x40 != 0:
		m := int64(first&0x1F)<<8 | int64(b[1])
		return sign * m, 2
	default:
		m := int64(first & 0x3F)
		return sign * m, 1
	}
}
