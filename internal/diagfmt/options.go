package diagfmt

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMsgpack:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or msgpack)", s)
}

type Options struct {
	Format Format
	// Color enables ANSI colors in text output.
	Color bool
	// MaxOutputs limits how many outputs are rendered, 0 means no limit.
	MaxOutputs int
}
