package logger

import "fmt"

// CharPosition locates a character in source text. Lines and columns are
// 1-based; the zero value means the position is unknown.
type CharPosition struct {
	Line   int `json:"line" msgpack:"line"`
	Column int `json:"column" msgpack:"column"`
}

func (p CharPosition) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// String implements fmt.Stringer.
func (p CharPosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
