package pipeline

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

type lineStyle int

const (
	styleDefault lineStyle = iota
	styleDetail
	styleWarn
	styleDone
)

type palette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) apply(style lineStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleDetail:
		return ansiDim + ansiGray + text + ansiReset
	case styleWarn:
		return ansiBold + ansiRed + text + ansiReset
	case styleDone:
		return ansiBold + ansiGreen + text + ansiReset
	default:
		return text
	}
}
