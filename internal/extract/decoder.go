package extract

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/NathanMOlson/ubxlib/internal/ubx"
)

// Offset within a decoded-response tail at which the body hex starts.
// The tail begins " 0xCC 0xII: " so the first body token sits 11
// characters in, and each body byte occupies 3 characters ("xx ").
const (
	bodyOffset    = 11
	bodyCharWidth = 3
)

// decodeResponseLine rebuilds a full UBX frame from a log line holding a
// message received from the GNSS device. The line carries only the
// class/ID and the body, so the sync chars, length and checksum are
// reconstructed here.
//
// A decoded-response line looks like:
//
//	U_GNSS: decoded UBX response 0x0a 0x06: 01 05 00 ...[body 120 byte(s)].
//
// start indexes just past the marker. Returns nil if no frame could be
// recovered.
func (e *Extractor) decodeResponseLine(lineNo int, line string, start int) []byte {
	tail := line[start:]

	class, id, ok := parseClassID(tail)
	if !ok {
		e.warn("couldn't find message class/ID in decoded line", lineNo, line)
		return nil
	}

	bodyIdx := strings.Index(tail, "body ")
	if bodyIdx < 0 {
		e.warn(`couldn't find "body" in decoded line`, lineNo, line)
		return nil
	}

	length, ok := parseBodyLength(tail[bodyIdx:])
	if !ok {
		e.warn("couldn't find body length in decoded line", lineNo, line)
		return nil
	}

	body, ok := parseBodyBytes(tail, length)
	if !ok {
		// The frame is still emitted: header and checksum only, with
		// the declared length left intact. Downstream tools surface
		// the mismatch instead of this tool guessing at a repair.
		e.warn("found non-hex value in body of decoded line", lineNo, line)
	}

	return ubx.Build(class, id, uint16(length), body)
}

// decodeCommandLine transcribes a log line holding a message sent to the
// GNSS device. The line already contains the complete frame as hex
// tokens, so this is a near-verbatim copy; only the first two characters
// of each token are used, which tolerates a trailing period on the last
// token. Returns nil if any token is not hex.
func (e *Extractor) decodeCommandLine(lineNo int, line string, start int) []byte {
	tokens := strings.Fields(line[start:])
	frame := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		if len(token) > 2 {
			token = token[:2]
		}
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			e.warn("found non-hex value in body of sent line", lineNo, line)
			return nil
		}
		frame = append(frame, byte(value))
	}
	return frame
}

// parseClassID extracts the message class and ID from the first 10
// characters of the tail, which by construction read " 0xCC 0xII".
// Anything other than exactly two hex values means the line is not
// shaped as expected.
func parseClassID(tail string) (class, id byte, ok bool) {
	head := tail
	if len(head) > 10 {
		head = head[:10]
	}

	var values []byte
	for _, token := range strings.Split(head, " 0x") {
		if token == "" {
			continue
		}
		value, err := strconv.ParseUint(strings.TrimSpace(token), 16, 8)
		if err != nil {
			return 0, 0, false
		}
		values = append(values, byte(value))
	}
	if len(values) != 2 {
		return 0, 0, false
	}
	return values[0], values[1], true
}

// parseBodyLength finds the declared body length in the text at and
// after the "body " marker. Exactly one all-digit token must be present
// ("body 120 byte(s)." yields 120).
func parseBodyLength(s string) (int, bool) {
	var lengths []int
	for _, token := range strings.Fields(s) {
		if !allDigits(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		lengths = append(lengths, n)
	}
	if len(lengths) != 1 {
		return 0, false
	}
	return lengths[0], true
}

// parseBodyBytes parses the hex body tokens spanning 3*length characters
// from the fixed body offset. The span is clamped to the tail, so a
// truncated line simply yields fewer bytes.
//
// The token batch is all-or-nothing: one bad token discards the whole
// body, not just the remainder. Callers emit the frame anyway, with the
// declared length and an empty body.
func parseBodyBytes(tail string, length int) ([]byte, bool) {
	start := min(bodyOffset, len(tail))
	end := min(bodyOffset+length*bodyCharWidth, len(tail))

	var body []byte
	for _, token := range strings.Fields(tail[start:end]) {
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return nil, false
		}
		body = append(body, byte(value))
	}
	return body, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (e *Extractor) warn(msg string, lineNo int, line string) {
	e.log.Warn(msg,
		zap.Int("line_number", lineNo),
		zap.String("line", line),
	)
}
