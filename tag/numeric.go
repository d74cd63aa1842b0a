package tag

import "math"

// Numeric is implemented by the six numeric leaf tags. Every numeric tag
// can be read back at every width. Narrowing follows two's complement
// truncation; float to integer conversion saturates and maps NaN to 0
// before truncating.
type Numeric interface {
	Tag
	Int8() int8
	Int16() int16
	Int32() int32
	Int64() int64
	Float32() float32
	Float64() float64
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
)

func (Byte) Kind() Kind   { return ByteKind }
func (Short) Kind() Kind  { return ShortKind }
func (Int) Kind() Kind    { return IntKind }
func (Long) Kind() Kind   { return LongKind }
func (Float) Kind() Kind  { return FloatKind }
func (Double) Kind() Kind { return DoubleKind }

func (Byte) sealed()   {}
func (Short) sealed()  {}
func (Int) sealed()    {}
func (Long) sealed()   {}
func (Float) sealed()  {}
func (Double) sealed() {}

func (v Byte) Int8() int8         { return int8(v) }
func (v Byte) Int16() int16       { return int16(v) }
func (v Byte) Int32() int32       { return int32(v) }
func (v Byte) Int64() int64       { return int64(v) }
func (v Byte) Float32() float32   { return float32(v) }
func (v Byte) Float64() float64   { return float64(v) }
func (v Short) Int8() int8        { return int8(v) }
func (v Short) Int16() int16      { return int16(v) }
func (v Short) Int32() int32      { return int32(v) }
func (v Short) Int64() int64      { return int64(v) }
func (v Short) Float32() float32  { return float32(v) }
func (v Short) Float64() float64  { return float64(v) }
func (v Int) Int8() int8          { return int8(v) }
func (v Int) Int16() int16        { return int16(v) }
func (v Int) Int32() int32        { return int32(v) }
func (v Int) Int64() int64        { return int64(v) }
func (v Int) Float32() float32    { return float32(v) }
func (v Int) Float64() float64    { return float64(v) }
func (v Long) Int8() int8         { return int8(v) }
func (v Long) Int16() int16       { return int16(v) }
func (v Long) Int32() int32       { return int32(v) }
func (v Long) Int64() int64       { return int64(v) }
func (v Long) Float32() float32   { return float32(v) }
func (v Long) Float64() float64   { return float64(v) }
func (v Float) Int8() int8        { return int8(toInt32(float64(v))) }
func (v Float) Int16() int16      { return int16(toInt32(float64(v))) }
func (v Float) Int32() int32      { return toInt32(float64(v)) }
func (v Float) Int64() int64      { return toInt64(float64(v)) }
func (v Float) Float32() float32  { return float32(v) }
func (v Float) Float64() float64  { return float64(v) }
func (v Double) Int8() int8       { return int8(toInt32(float64(v))) }
func (v Double) Int16() int16     { return int16(toInt32(float64(v))) }
func (v Double) Int32() int32     { return toInt32(float64(v)) }
func (v Double) Int64() int64     { return toInt64(float64(v)) }
func (v Double) Float32() float32 { return float32(v) }
func (v Double) Float64() float64 { return float64(v) }

func toInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

func toInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	// float64(MaxInt64) rounds up to 2^63
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
