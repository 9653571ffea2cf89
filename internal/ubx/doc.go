// Package ubx implements the UBX binary protocol framing used by u-blox
// GNSS receivers.
//
// # Frame Format
//
// Every UBX frame has this structure:
//   - Sync chars: 0xb5 0x62
//   - Message class: 1 byte
//   - Message ID: 1 byte
//   - Body length: 2 bytes (little-endian)
//   - Body: variable length
//   - Checksum: 2 bytes (CK_A, CK_B)
//
// The checksum is the 8-bit Fletcher algorithm run over every byte from
// the class through the end of the body:
//
//	ckA = (ckA + b) % 256
//	ckB = (ckB + ckA) % 256
//
// # Usage Example
//
//	// Rebuild a frame whose header, length and checksum were stripped
//	frame := ubx.Build(0x0a, 0x06, 3, []byte{0x01, 0x05, 0x00})
//
//	// Inspect a captured frame
//	parsed, err := ubx.Parse(frame)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(parsed) // Frame{class=MON (0x0a), id=0x06, ...}
//
// # Tolerance
//
// Frames reconstructed from log text are not always well formed: a body
// can be shorter than the declared length when the log line was damaged.
// Build accepts such bodies unchanged and Parse accepts truncated
// frames, so the package can faithfully round-trip whatever a log
// actually contained. Frame.Complete and Frame.ChecksumValid report
// whether a frame is internally consistent.
package ubx
