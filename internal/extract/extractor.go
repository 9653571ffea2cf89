package extract

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Default marker strings emitted by ubxlib. These identify the
// direction of the GNSS traffic on a log line; they are configuration,
// not protocol, and must match the producing ubxlib build exactly.
const (
	DefaultResponseMarker = "U_GNSS: decoded UBX response"
	DefaultCommandMarker  = "U_GNSS: sent command"

	// DefaultOutputExtension is appended to the output path when it has
	// no extension, so the result opens directly in u-center.
	DefaultOutputExtension = "ubx"
)

// Sentinel errors for file-level failures. Per-line decode problems are
// never errors; they are logged and the line is skipped.
var (
	ErrNotAFile  = errors.New("input is not a file")
	ErrNoTraffic = errors.New("no GNSS traffic found")
)

// Direction identifies which way a recovered message travelled.
type Direction int

const (
	// DirResponse is a message received from the GNSS device.
	DirResponse Direction = iota
	// DirCommand is a message sent to the GNSS device.
	DirCommand
)

func (d Direction) String() string {
	switch d {
	case DirResponse:
		return "response"
	case DirCommand:
		return "command"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Message is one UBX frame recovered from the log, tagged with where it
// came from.
type Message struct {
	LineNo    int       // 1-based log line the frame was recovered from
	Direction Direction // Device-to-host or host-to-device
	Data      []byte    // Complete frame bytes
}

// Options configures an extraction run.
type Options struct {
	ResponseMarker  string // Marker for device-to-host lines (default DefaultResponseMarker)
	CommandMarker   string // Marker for host-to-device lines (default DefaultCommandMarker)
	OutputExtension string // Appended when the output path has none (default DefaultOutputExtension)
	ResponsesOnly   bool   // Ignore host-to-device lines entirely

	// Progress, if set, is called after each line with the number of
	// lines processed so far and the total.
	Progress func(done, total int)
}

// Result summarizes a completed extraction run.
type Result struct {
	Frames       int    // Total frames written
	Responses    int    // Frames recovered from decoded-response lines
	Commands     int    // Frames recovered from sent-command lines
	BytesWritten int    // Size of the output file
	OutputPath   string // Actual path written, extension included
}

// Extractor recovers UBX traffic from ubxlib log text.
//
// Each call owns its own line slice and frame list, so a single
// Extractor may serve any number of runs.
type Extractor struct {
	opts Options
	log  *zap.Logger
}

// New returns an Extractor with defaults filled in. A nil logger
// silences all warnings (useful in tests).
func New(opts Options, log *zap.Logger) *Extractor {
	if opts.ResponseMarker == "" {
		opts.ResponseMarker = DefaultResponseMarker
	}
	if opts.CommandMarker == "" {
		opts.CommandMarker = DefaultCommandMarker
	}
	if opts.OutputExtension == "" {
		opts.OutputExtension = DefaultOutputExtension
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{opts: opts, log: log}
}

// Extract classifies each line by marker and collects the recovered
// frames in encounter order. The response marker is checked first, so a
// line somehow carrying both markers is treated as a response. Lines
// that fail to decode contribute nothing; only ctx cancellation stops
// the run early.
func (e *Extractor) Extract(ctx context.Context, lines []string) ([]Message, error) {
	var messages []Message
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")

		var frame []byte
		direction := DirResponse
		if idx := strings.Index(line, e.opts.ResponseMarker); idx >= 0 {
			frame = e.decodeResponseLine(lineNo, line, idx+len(e.opts.ResponseMarker))
		} else if !e.opts.ResponsesOnly {
			if idx := strings.Index(line, e.opts.CommandMarker); idx >= 0 {
				frame = e.decodeCommandLine(lineNo, line, idx+len(e.opts.CommandMarker))
				direction = DirCommand
			}
		}

		// Empty frames are never collected
		if len(frame) > 0 {
			e.log.Debug("recovered frame",
				zap.Stringer("direction", direction),
				zap.Int("line_number", lineNo),
				zap.Int("length", len(frame)),
				zap.String("hex", hex.EncodeToString(frame)),
			)
			messages = append(messages, Message{
				LineNo:    lineNo,
				Direction: direction,
				Data:      frame,
			})
		}

		if e.opts.Progress != nil {
			e.opts.Progress(i+1, len(lines))
		}
	}
	return messages, nil
}

// Scan reads the input file and extracts its UBX traffic without
// writing anything.
func (e *Extractor) Scan(ctx context.Context, inputPath string) ([]Message, error) {
	info, err := os.Stat(inputPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q: %w", inputPath, ErrNotAFile)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	e.log.Debug("read input file",
		zap.String("path", inputPath),
		zap.Int("bytes", len(data)),
	)

	return e.Extract(ctx, splitLines(string(data)))
}

// Run performs a full extraction: read the input file, recover the
// frames, and write them concatenated to the output file. The output
// file is created or truncated only once at least one frame exists, so
// a failed run never leaves a partial file behind.
func (e *Extractor) Run(ctx context.Context, inputPath, outputPath string) (Result, error) {
	messages, err := e.Scan(ctx, inputPath)
	if err != nil {
		return Result{}, err
	}
	if len(messages) == 0 {
		return Result{}, fmt.Errorf("%s: %w", inputPath, ErrNoTraffic)
	}

	if filepath.Ext(outputPath) == "" {
		outputPath += "." + e.opts.OutputExtension
	}

	var buf bytes.Buffer
	result := Result{OutputPath: outputPath}
	for _, message := range messages {
		buf.Write(message.Data)
		result.Frames++
		switch message.Direction {
		case DirResponse:
			result.Responses++
		case DirCommand:
			result.Commands++
		}
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	result.BytesWritten = buf.Len()

	e.log.Info("wrote UBX output",
		zap.String("path", outputPath),
		zap.Int("frames", result.Frames),
		zap.Int("bytes", result.BytesWritten),
	)

	return result, nil
}

// splitLines splits file contents on newlines, dropping the empty
// trailing element produced by a final newline so line numbering matches
// what an editor shows.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
