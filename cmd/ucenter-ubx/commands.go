package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/NathanMOlson/ubxlib/internal/config"
	"github.com/NathanMOlson/ubxlib/internal/extract"
	"github.com/NathanMOlson/ubxlib/internal/logging"
	"github.com/NathanMOlson/ubxlib/internal/ubx"
)

// Extraction command flags
var (
	responsesOnly bool
	configPath    string
	logLevel      string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file overriding the log marker strings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&responsesOnly, "responses-only", "r", false,
		"Include only the responses from the GNSS device (leave out any commands sent to it)")

	rootCmd.AddCommand(inspectCmd)
}

// newExtractor builds an Extractor from the config file (or defaults)
// and the command flags.
func newExtractor(withProgress bool) (*extract.Extractor, *config.Config, error) {
	if err := logging.Initialize(logLevel); err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		logging.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("response_marker", cfg.Markers.Response),
			zap.String("command_marker", cfg.Markers.Command),
		)
	}

	opts := extract.Options{
		ResponseMarker:  cfg.Markers.Response,
		CommandMarker:   cfg.Markers.Command,
		OutputExtension: cfg.Output.Extension,
		ResponsesOnly:   responsesOnly,
	}

	// Only draw a progress bar on an interactive terminal
	if withProgress && term.IsTerminal(int(os.Stdout.Fd())) {
		var bar *progressbar.ProgressBar
		opts.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "scanning")
			}
			_ = bar.Set(done)
		}
	}

	return extract.New(opts, logging.GetLogger()), cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	inputFile, outputFile := args[0], args[1]

	ex, cfg, err := newExtractor(true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Reading file %s...\n", inputFile)
	searching := fmt.Sprintf("Looking for lines containing %q", cfg.Markers.Response)
	if !responsesOnly {
		searching += fmt.Sprintf(" and %q", cfg.Markers.Command)
	}
	fmt.Println(searching + "...")

	result, err := ex.Run(ctx, inputFile, outputFile)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d UBX message(s) (%d response(s), %d command(s), %d byte(s)) to %s.\n",
		result.Frames, result.Responses, result.Commands, result.BytesWritten, result.OutputPath)
	fmt.Printf("File %s has been written: you may open it in u-center.\n", result.OutputPath)

	return nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input_file>",
	Short: "List the UBX frames found in a log without writing a file",
	Long: `Decode the GNSS traffic in a ubxlib log and print one line per
recovered frame: direction, message class and ID, declared versus
recovered body length, and whether the frame is internally consistent.

Nothing is written to disk.`,
	Example: `  # List all frames
  ucenter-ubx inspect device.log

  # List only device responses
  ucenter-ubx inspect device.log -r`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runInspect,
}

func init() {
	inspectCmd.Flags().BoolVarP(&responsesOnly, "responses-only", "r", false,
		"Include only the responses from the GNSS device")
}

func runInspect(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	ex, _, err := newExtractor(false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	messages, err := ex.Scan(ctx, args[0])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return fmt.Errorf("%s: %w", args[0], extract.ErrNoTraffic)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tLINE\tDIRECTION\tCLASS\tID\tDECLARED\tBODY\tTOTAL\tCHECKSUM")
	for i, message := range messages {
		frame, err := ubx.Parse(message.Data)
		if err != nil {
			// Command lines can carry arbitrary bytes; show what we have
			fmt.Fprintf(w, "%d\t%d\t%s\t-\t-\t-\t-\t%d\tnot UBX\n",
				i+1, message.LineNo, message.Direction, len(message.Data))
			continue
		}

		checksum := "ok"
		if !frame.ChecksumValid() {
			checksum = "BAD"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s (0x%02x)\t0x%02x\t%d\t%d\t%d\t%s\n",
			i+1, message.LineNo, message.Direction,
			ubx.ClassName(frame.Class), frame.Class, frame.ID,
			frame.Length, len(frame.Body), frame.WireLen(), checksum)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d UBX message(s) found in %s.\n", len(messages), args[0])
	return nil
}
