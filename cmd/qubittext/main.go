// Command qubittext encodes and decodes text against a fixed-width
// alphabet table loaded from a file.
//
// Usage:
//
//	qubittext encode --table table.txt --text "hello world"
//	qubittext encode --table table.txt --file input.txt
//	qubittext decode --table table.txt --file compressed.hex
//
// Encoding writes the packed buffer twice, as comma-separated 0xHH hex
// text and as raw bytes; decoding accepts either form and writes the
// recovered text. Both modes print size metrics for the transfer.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	qubittext "github.com/Qubitbytesltd/QubitText-Compressor"
)

var log = logging.MustGetLogger("qubittext")

var (
	tableFile string
	inFile    string
	inText    string
	verbose   bool

	hexOut  string
	rawOut  string
	textOut string
)

func main() {
	root := &cobra.Command{
		Use:           "qubittext",
		Short:         "fixed-width character codec with EOS termination",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging()
		},
	}
	root.PersistentFlags().StringVar(&tableFile, "table", "table.txt", "alphabet table file")
	root.PersistentFlags().StringVar(&inFile, "file", "", "input file (text for encode, hex for decode)")
	root.PersistentFlags().StringVar(&inText, "text", "", "inline input (text for encode, hex for decode)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "encode text into a packed hex/byte stream",
		Args:  cobra.NoArgs,
		RunE:  runEncode,
	}
	encodeCmd.Flags().StringVar(&hexOut, "hex-out", "compressed.hex", "hex output file")
	encodeCmd.Flags().StringVar(&rawOut, "raw-out", "bytestream.txt", "raw byte output file")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "decode a packed hex stream back into text",
		Args:  cobra.NoArgs,
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVar(&textOut, "out", "decompressed.txt", "decoded text output file")

	root.AddCommand(encodeCmd, decodeCmd)

	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "qubittext: ", 0)
	formatter := logging.MustStringFormatter("%{level:.4s} %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func loadAlphabet() (*qubittext.Alphabet, error) {
	raw, err := os.ReadFile(tableFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", tableFile)
	}
	alpha, err := qubittext.ParseAlphabet(string(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing table %s", tableFile)
	}
	log.Debugf("table %s: %d symbols, %d bits/char", tableFile, alpha.Len(), alpha.Width())
	return alpha, nil
}

// readInput returns the inline or file input, preferring the file as the
// original tool did.
func readInput() (string, error) {
	if inFile != "" {
		raw, err := os.ReadFile(inFile)
		if err != nil {
			return "", errors.Wrapf(err, "reading input %s", inFile)
		}
		return string(raw), nil
	}
	if inText != "" {
		return inText, nil
	}
	return "", errors.New("provide --file or --text")
}

func runEncode(*cobra.Command, []string) error {
	alpha, err := loadAlphabet()
	if err != nil {
		return err
	}
	text, err := readInput()
	if err != nil {
		return err
	}

	packed, symbolBits, err := alpha.Encode(text)
	if err != nil {
		return err
	}
	m := qubittext.Measure(strings.ToLower(text), packed, symbolBits)

	if err := os.WriteFile(hexOut, []byte(qubittext.FormatHex(packed)), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", hexOut)
	}
	if err := os.WriteFile(rawOut, packed, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", rawOut)
	}

	fmt.Printf("Bits per Character: %d\n", alpha.Width())
	printMetrics(m)
	fmt.Printf("Compressed hex output saved to %s\n", hexOut)
	fmt.Printf("Compressed byte stream saved to %s\n", rawOut)
	return nil
}

func runDecode(*cobra.Command, []string) error {
	alpha, err := loadAlphabet()
	if err != nil {
		return err
	}
	hexText, err := readInput()
	if err != nil {
		return err
	}
	packed, err := qubittext.ParseHex(hexText)
	if err != nil {
		return err
	}

	text, err := alpha.Decode(packed)
	if err != nil {
		return err
	}
	symbolBits := len([]rune(text)) * int(alpha.Width())
	m := qubittext.Measure(text, packed, symbolBits)

	if err := os.WriteFile(textOut, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", textOut)
	}

	fmt.Printf("Bits per Character: %d\n", alpha.Width())
	fmt.Printf("Decompressed text saved to %s\n", textOut)
	printMetrics(m)
	fmt.Printf("Decompressed Content: %s\n", text)
	return nil
}

func printMetrics(m qubittext.Metrics) {
	fmt.Printf("Original Size: %d bytes\n", m.OriginalBytes)
	fmt.Printf("Compressed Size: %d bytes (%d bits)\n", m.CompressedBytes, m.CompressedBits)
	fmt.Printf("Bitstream Size: %d bits\n", m.SymbolBits)
	fmt.Printf("Compression Ratio: %.2f\n", m.Ratio)
}
