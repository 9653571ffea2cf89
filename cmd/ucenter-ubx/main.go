// Ucenter-ubx recovers UBX GNSS traffic from ubxlib log output.
//
// ubxlib logs the messages exchanged with a GNSS device as hex text
// mixed into its diagnostic output. This tool finds those lines,
// rebuilds the binary UBX frames they describe, and writes them to a
// .ubx file that the u-blox u-center tool can open.
//
// Usage:
//
//	ucenter-ubx <input_file> <output_file> [flags]
//
// See 'ucenter-ubx --help' for available commands and flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NathanMOlson/ubxlib/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ucenter-ubx <input_file> <output_file>",
	Short: "Extract UBX GNSS traffic from a ubxlib log",
	Long: `Find GNSS traffic in ubxlib log output and write it to a file
that u-center can open.

ubxlib emits log output by default and, if the GNSS device/network was
opened with the uDevice/uNetwork API, this includes the GNSS traffic.
Otherwise enable logging of GNSS traffic by calling
uGnssSetUbxMessagePrint() with true.

The output file is overwritten if it exists. If it has no extension,
".ubx" is appended.`,
	Example: `  # Extract all GNSS traffic
  ucenter-ubx device.log capture.ubx

  # Only the responses from the device
  ucenter-ubx device.log capture.ubx -r

  # List the recovered frames without writing a file
  ucenter-ubx inspect device.log`,
	Version:      version.Version,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ucenter-ubx %s (commit: %s)\n", version.Version, version.Commit)
	},
}
