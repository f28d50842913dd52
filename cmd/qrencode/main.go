// Command qrencode encodes text into a QR Code symbol and prints it.
//
// Text is taken from the arguments, joined with spaces, or read from
// standard input when no arguments are given.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/qrcode"
	"github.com/ericlevine/qrencode/qrcode/matrix"
	"github.com/ericlevine/qrencode/qrcode/version"
)

var g = struct {
	level       string // error correction level
	margin      int    // quiet zone modules
	minVersion  int    // smallest acceptable version, 0 for any
	mask        int    // forced mask pattern, -1 for automatic
	charset     string // byte mode character set
	fingerprint bool   // print fingerprint instead of the symbol
	diag        bool   // print stage diagnostics to stderr
	plain       bool   // plain text output even on a terminal
}{
	level:  "L",
	margin: 4,
	mask:   -1,
}

func parseFlags() {
	getopt.SetParameters("[string ...]")
	help := getopt.BoolLong("help", 'h', "show this help")
	getopt.FlagLong(&g.level, "level", 'l', "error correction level, lowest to highest", "L|M|Q|H")
	getopt.FlagLong(&g.margin, "margin", 'm', "quiet zone modules", "n")
	getopt.FlagLong(&g.minVersion, "version", 'v', "smallest symbol version to use (1-40)", "ver")
	getopt.FlagLong(&g.mask, "mask", 'k', "force mask pattern (0-7) instead of penalty selection", "mask")
	getopt.FlagLong(&g.charset, "charset", 'c', "character set for byte mode, e.g. UTF-8 or Shift_JIS", "name")
	getopt.FlagLong(&g.fingerprint, "fingerprint", 'x', "print the 64-bit matrix fingerprint instead of the symbol")
	getopt.FlagLong(&g.diag, "diag", 'd', "print version, mode, mask and penalty to standard error")
	getopt.FlagLong(&g.plain, "plain", 'p', "print one character per module even on a terminal")

	getopt.Parse()
	if *help {
		getopt.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if !g.plain && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		g.plain = true
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	opts := &qrencode.EncodeOptions{
		ErrorCorrection: strings.ToUpper(g.level),
		CharacterSet:    g.charset,
		Margin:          &g.margin,
		QRVersion:       g.minVersion,
	}
	if g.mask >= 0 {
		opts.QRMaskPattern = &g.mask
	}

	code, quietZone, err := qrcode.NewWriter().EncodeSymbol(s, opts)
	if err != nil {
		log.Fatalln(err)
	}
	if g.diag {
		log.Printf("version %d (%dx%d), level %s, mode %s, mask %d, penalty %d",
			code.Version.Number, code.Version.Dimension(), code.Version.Dimension(),
			code.ECLevel, code.Mode, code.MaskPattern, code.Penalty)
		log.Printf("fingerprint %016x", code.Matrix.Fingerprint())
		first, second := matrix.ReadFormatInfo(code.Matrix, code.Matrix.Width())
		for _, word := range []int{first, second} {
			level, maskPattern, err := version.DecodeFormatInfo(word)
			if err != nil {
				log.Fatalln(err)
			}
			log.Printf("format info 0x%04x: level %s, mask %d", word, level, maskPattern)
		}
	}
	if g.fingerprint {
		fmt.Printf("%016x\n", code.Matrix.Fingerprint())
		return
	}

	m := qrcode.RenderResult(code, 0, 0, quietZone)
	if g.plain {
		_, err = io.WriteString(os.Stdout, m.StringWithChars("##", "  "))
	} else {
		err = writeHalfBlocks(os.Stdout, m)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
