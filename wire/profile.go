package wire

// Profile reads and appends the primitives a tag payload is built from.
// Implementations are stateless and safe for concurrent use.
//
// Read methods return io.EOF only when the source was exhausted before the
// first byte of the value; a value cut short yields io.ErrUnexpectedEOF.
type Profile interface {
	Format() Format

	ReadInt8(r Source) (int8, error)
	ReadInt16(r Source) (int16, error)
	ReadInt32(r Source) (int32, error)
	ReadInt64(r Source) (int64, error)
	ReadFloat32(r Source) (float32, error)
	ReadFloat64(r Source) (float64, error)
	// ReadLength reads a list or array count. The result may be negative;
	// callers reject that with ErrNegativeLength.
	ReadLength(r Source) (int32, error)
	ReadString(r Source) (string, error)

	AppendInt8(b []byte, v int8) []byte
	AppendInt16(b []byte, v int16) []byte
	AppendInt32(b []byte, v int32) []byte
	AppendInt64(b []byte, v int64) []byte
	AppendFloat32(b []byte, v float32) []byte
	AppendFloat64(b []byte, v float64) []byte
	AppendLength(b []byte, n int32) []byte
	AppendString(b []byte, s string) ([]byte, error)
}

var (
	Disk    Profile = diskProfile{}
	Network Profile = networkProfile{}
)
