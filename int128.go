package clipper

import "math/bits"

// int128 holds a signed 128bit value in two's complement form. It exists
// solely for the cross products needed by slopesEqual and the area and
// orientation tests once coordinates exceed loRange, where a plain int64
// product would overflow.
type int128 struct {
	hi int64
	lo uint64
}

func int128Mul(lhs, rhs cInt) int128 {
	negate := (lhs < 0) != (rhs < 0)
	if lhs < 0 {
		lhs = -lhs
	}
	if rhs < 0 {
		rhs = -rhs
	}
	hi, lo := bits.Mul64(uint64(lhs), uint64(rhs))
	r := int128{hi: int64(hi), lo: lo}
	if negate {
		r = r.negate()
	}
	return r
}

func (i int128) negate() int128 {
	lo := -i.lo
	hi := ^i.hi
	if lo == 0 {
		hi++
	}
	return int128{hi: hi, lo: lo}
}

func (i int128) equals(j int128) bool {
	return i.hi == j.hi && i.lo == j.lo
}
