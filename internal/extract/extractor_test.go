package extract

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var (
	// A MON-MSGPP response with a one-byte body and the CFG-VALSET
	// command frame it answered, as ubxlib logs them.
	responseLine = "U_GNSS: decoded UBX response 0x0a 0x06: 01 [body 1 byte(s)]."
	commandLine  = "U_GNSS: sent command b5 62 06 8a 09 00 00 01 00 00 21 00 11 20 08 f4 51."

	responseFrame = []byte{0xb5, 0x62, 0x0a, 0x06, 0x01, 0x00, 0x01, 0x12, 0x4e}
	commandFrame  = []byte{0xb5, 0x62, 0x06, 0x8a, 0x09, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x21, 0x00, 0x11, 0x20, 0x08, 0xf4, 0x51}
)

func TestExtract(t *testing.T) {
	e := New(Options{}, nil)

	lines := []string{
		"U_PORT: opened UART 0",
		commandLine,
		"some unrelated diagnostic output",
		responseLine,
		"U_GNSS: decoded UBX response 0x0a 0x06: 01 05 00.", // no body marker
	}

	messages, err := e.Extract(context.Background(), lines)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Extract() returned %d messages, want 2", len(messages))
	}

	if messages[0].LineNo != 2 || messages[0].Direction != DirCommand {
		t.Errorf("messages[0] = line %d %s, want line 2 command",
			messages[0].LineNo, messages[0].Direction)
	}
	if !bytes.Equal(messages[0].Data, commandFrame) {
		t.Errorf("messages[0].Data = % 02x, want % 02x", messages[0].Data, commandFrame)
	}

	if messages[1].LineNo != 4 || messages[1].Direction != DirResponse {
		t.Errorf("messages[1] = line %d %s, want line 4 response",
			messages[1].LineNo, messages[1].Direction)
	}
	if !bytes.Equal(messages[1].Data, responseFrame) {
		t.Errorf("messages[1].Data = % 02x, want % 02x", messages[1].Data, responseFrame)
	}
}

func TestExtractResponsesOnly(t *testing.T) {
	e := New(Options{ResponsesOnly: true}, nil)

	messages, err := e.Extract(context.Background(), []string{commandLine, responseLine})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Extract() returned %d messages, want 1", len(messages))
	}
	if messages[0].Direction != DirResponse {
		t.Errorf("direction = %s, want response", messages[0].Direction)
	}
}

func TestExtractResponseMarkerWins(t *testing.T) {
	e := New(Options{}, nil)

	// Both markers on one line: the response marker is checked first,
	// even though the command marker appears earlier in the text.
	line := "U_GNSS: sent command noise U_GNSS: decoded UBX response 0x05 0x01: [body 0 byte(s)]."
	messages, err := e.Extract(context.Background(), []string{line})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Extract() returned %d messages, want 1", len(messages))
	}
	if messages[0].Direction != DirResponse {
		t.Errorf("direction = %s, want response", messages[0].Direction)
	}
	want := []byte{0xb5, 0x62, 0x05, 0x01, 0x00, 0x00, 0x06, 0x17}
	if !bytes.Equal(messages[0].Data, want) {
		t.Errorf("data = % 02x, want % 02x", messages[0].Data, want)
	}
}

func TestExtractCustomMarkers(t *testing.T) {
	e := New(Options{
		ResponseMarker: "GNSS RX:",
		CommandMarker:  "GNSS TX:",
	}, nil)

	lines := []string{
		"GNSS RX: 0x05 0x01: [body 0 byte(s)].",
		"GNSS TX: b5 62 06 8a 09 00.",
		responseLine, // stock marker, not recognized with custom config
	}
	messages, err := e.Extract(context.Background(), lines)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Extract() returned %d messages, want 2", len(messages))
	}
}

func TestExtractCancelled(t *testing.T) {
	e := New(Options{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Extract(ctx, []string{responseLine}); !errors.Is(err, context.Canceled) {
		t.Errorf("Extract() error = %v, want context.Canceled", err)
	}
}

func TestExtractProgress(t *testing.T) {
	var calls, lastDone, lastTotal int
	e := New(Options{
		Progress: func(done, total int) {
			calls++
			lastDone, lastTotal = done, total
		},
	}, nil)

	lines := []string{"noise", responseLine, "noise"}
	if _, err := e.Extract(context.Background(), lines); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if calls != 3 {
		t.Errorf("progress calls = %d, want 3", calls)
	}
	if lastDone != 3 || lastTotal != 3 {
		t.Errorf("final progress = %d/%d, want 3/3", lastDone, lastTotal)
	}
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	input := writeInput(t, commandLine+"\n"+responseLine+"\n")
	output := filepath.Join(t.TempDir(), "capture")

	e := New(Options{}, nil)
	result, err := e.Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantPath := output + ".ubx"
	if result.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, wantPath)
	}
	if result.Frames != 2 || result.Responses != 1 || result.Commands != 1 {
		t.Errorf("counts = %d/%d/%d, want frames 2, responses 1, commands 1",
			result.Frames, result.Responses, result.Commands)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := append(append([]byte{}, commandFrame...), responseFrame...)
	if !bytes.Equal(data, want) {
		t.Errorf("output = % 02x, want % 02x", data, want)
	}
	if result.BytesWritten != len(want) {
		t.Errorf("BytesWritten = %d, want %d", result.BytesWritten, len(want))
	}
}

func TestRunKeepsExplicitExtension(t *testing.T) {
	input := writeInput(t, responseLine+"\n")
	output := filepath.Join(t.TempDir(), "capture.bin")

	e := New(Options{}, nil)
	result, err := e.Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.OutputPath != output {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, output)
	}
}

func TestRunOverwrites(t *testing.T) {
	input := writeInput(t, responseLine+"\n")
	output := filepath.Join(t.TempDir(), "capture.ubx")

	e := New(Options{}, nil)
	if _, err := e.Run(context.Background(), input, output); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	first, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	// A second run must truncate, not append
	if _, err := e.Run(context.Background(), input, output); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	second, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("second run output differs: % 02x vs % 02x", first, second)
	}
}

func TestRunNoTraffic(t *testing.T) {
	input := writeInput(t, "nothing of interest\njust diagnostics\n")
	output := filepath.Join(t.TempDir(), "capture.ubx")

	e := New(Options{}, nil)
	if _, err := e.Run(context.Background(), input, output); !errors.Is(err, ErrNoTraffic) {
		t.Fatalf("Run() error = %v, want ErrNoTraffic", err)
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("output file was created despite no traffic")
	}
}

func TestRunMissingInput(t *testing.T) {
	e := New(Options{}, nil)

	_, err := e.Run(context.Background(), filepath.Join(t.TempDir(), "missing.log"), "out.ubx")
	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("Run() error = %v, want ErrNotAFile", err)
	}

	// A directory is not a regular file either
	_, err = e.Run(context.Background(), t.TempDir(), "out.ubx")
	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("Run() with directory error = %v, want ErrNotAFile", err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "trailing newline", in: "a\nb\n", want: 2},
		{name: "no trailing newline", in: "a\nb", want: 2},
		{name: "empty", in: "", want: 0},
		{name: "blank lines kept", in: "a\n\nb\n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.in); len(got) != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d", tt.in, len(got), tt.want)
			}
		})
	}
}

func TestExtractCRLFInput(t *testing.T) {
	e := New(Options{}, nil)

	messages, err := e.Extract(context.Background(), []string{responseLine + "\r"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Extract() returned %d messages, want 1", len(messages))
	}
	if !bytes.Equal(messages[0].Data, responseFrame) {
		t.Errorf("data = % 02x, want % 02x", messages[0].Data, responseFrame)
	}
}
