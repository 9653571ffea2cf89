package ubx

import (
	"encoding/binary"
	"fmt"
)

// UBX frame constants
const (
	SyncChar1 = 0xb5 // First sync character of every UBX frame
	SyncChar2 = 0x62 // Second sync character

	HeaderLen   = 6 // Sync (2) + class + ID + 2-byte little-endian body length
	ChecksumLen = 2 // CK_A + CK_B
	OverheadLen = HeaderLen + ChecksumLen
)

// Frame represents a parsed UBX frame
type Frame struct {
	Class  byte   // Message class
	ID     byte   // Message ID within the class
	Length uint16 // Declared body length from the frame header
	Body   []byte // Body bytes actually present (may be shorter than Length)
	CkA    byte   // First checksum byte
	CkB    byte   // Second checksum byte
	Raw    []byte // Original frame bytes
}

// Checksum computes the UBX 8-bit Fletcher checksum over data.
// Data covers everything between the sync characters and the checksum
// itself: class, ID, the two length bytes, and the body.
func Checksum(data []byte) (ckA, ckB byte) {
	for _, b := range data {
		ckA += b
		ckB += ckA
	}
	return ckA, ckB
}

// Build constructs a complete UBX frame from its fields.
//
// Frame structure:
//
//	[0]     0xb5        Sync char 1
//	[1]     0x62        Sync char 2
//	[2]     class       Message class
//	[3]     id          Message ID
//	[4-5]   length      Declared body length (little-endian uint16)
//	[6+]    body        Body bytes
//	[N-2:]  CK_A, CK_B  Checksum over bytes 2..N-3
//
// The declared length and the body are taken as given: body may be
// shorter than length, in which case the checksum covers only the bytes
// present. Log reconstruction relies on this when a body could not be
// recovered in full.
func Build(class, id byte, length uint16, body []byte) []byte {
	frame := make([]byte, 0, OverheadLen+len(body))
	frame = append(frame, SyncChar1, SyncChar2, class, id, byte(length), byte(length>>8))
	frame = append(frame, body...)
	ckA, ckB := Checksum(frame[2:])
	return append(frame, ckA, ckB)
}

// Parse decodes a UBX frame from raw bytes.
//
// Parse is deliberately tolerant of short frames: anything carrying the
// sync characters plus class and ID is accepted, so truncated frames
// recovered from a log can still be inspected. Fields past the end of
// the data are left zero.
func Parse(data []byte) (*Frame, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("frame too short: %d bytes (minimum 4)", len(data))
	}
	if data[0] != SyncChar1 || data[1] != SyncChar2 {
		return nil, fmt.Errorf("invalid sync chars: 0x%02x 0x%02x (expected 0x%02x 0x%02x)",
			data[0], data[1], SyncChar1, SyncChar2)
	}

	frame := &Frame{
		Class: data[2],
		ID:    data[3],
		Raw:   data,
	}

	if len(data) >= HeaderLen {
		frame.Length = binary.LittleEndian.Uint16(data[4:6])
	}

	if len(data) > HeaderLen {
		rest := data[HeaderLen:]
		if len(rest) >= ChecksumLen {
			frame.CkA = rest[len(rest)-2]
			frame.CkB = rest[len(rest)-1]
			rest = rest[:len(rest)-ChecksumLen]
		}
		frame.Body = rest
	}

	return frame, nil
}

// Bytes returns the frame's wire-format bytes.
func (f *Frame) Bytes() []byte {
	return f.Raw
}

// WireLen returns the frame's total length on the wire, header and
// checksum included.
func (f *Frame) WireLen() int {
	return len(f.Raw)
}

// Complete reports whether the frame's wire length matches its declared
// body length.
func (f *Frame) Complete() bool {
	return len(f.Raw) == OverheadLen+int(f.Length)
}

// ChecksumValid recomputes the checksum over the frame bytes and
// compares it with the trailing CK_A/CK_B. Frames too short to carry a
// checksum are reported invalid.
func (f *Frame) ChecksumValid() bool {
	if len(f.Raw) < OverheadLen {
		return false
	}
	ckA, ckB := Checksum(f.Raw[2 : len(f.Raw)-ChecksumLen])
	return ckA == f.CkA && ckB == f.CkB
}

// String returns a human-readable representation of the frame
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{class=%s (0x%02x), id=0x%02x, len=%d, body=%d bytes, ck=%02x%02x}",
		ClassName(f.Class), f.Class, f.ID, f.Length, len(f.Body), f.CkA, f.CkB)
}
