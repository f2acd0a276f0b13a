package diagfmt

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/leonardinius/golury/internal/logger"
)

// Render writes outputs to w in the format selected by opts.
func Render(w io.Writer, outputs []logger.CompileOutput, opts Options) error {
	truncated := 0
	if opts.MaxOutputs > 0 && len(outputs) > opts.MaxOutputs {
		truncated = len(outputs) - opts.MaxOutputs
		outputs = outputs[:opts.MaxOutputs]
	}

	switch opts.Format {
	case FormatText, "":
		return Text(w, outputs, truncated, opts.Color)
	case FormatJSON:
		return JSON(w, outputs)
	case FormatMsgpack:
		return Msgpack(w, outputs)
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

// JSON writes outputs as an indented JSON Document.
func JSON(w io.Writer, outputs []logger.CompileOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(outputs)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Msgpack writes outputs as a MessagePack Document.
func Msgpack(w io.Writer, outputs []logger.CompileOutput) error {
	if err := msgpack.NewEncoder(w).Encode(NewDocument(outputs)); err != nil {
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return nil
}

// ReadJSON decodes a Document written by JSON.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}

// ReadMsgpack decodes a Document written by Msgpack.
func ReadMsgpack(r io.Reader) (Document, error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode msgpack: %w", err)
	}
	return doc, nil
}
