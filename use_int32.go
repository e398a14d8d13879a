//go:build use_int32

package clipper

type cInt int32

// 46340^2 still fits an int64 product, so the extended precision
// path is never needed with 32bit coords and loRange == hiRange.
const loRange cInt = 46340
const hiRange cInt = 46340
