package diagfmt

import (
	"github.com/leonardinius/golury/internal/logger"
)

// Record is the serialized form of a logger.CompileOutput.
type Record struct {
	Severity   string               `json:"severity" msgpack:"severity"`
	ID         string               `json:"id" msgpack:"id"`
	Number     int                  `json:"number" msgpack:"number"`
	Message    string               `json:"message" msgpack:"message"`
	File       string               `json:"file,omitempty" msgpack:"file,omitempty"`
	Position   *logger.CharPosition `json:"position,omitempty" msgpack:"position,omitempty"`
	Code       *string              `json:"code,omitempty" msgpack:"code,omitempty"`
	SourceCode *string              `json:"source_code,omitempty" msgpack:"source_code,omitempty"`
	Appendix   *string              `json:"appendix,omitempty" msgpack:"appendix,omitempty"`
}

// Document is the root of JSON and MessagePack output.
type Document struct {
	Outputs  []Record `json:"outputs" msgpack:"outputs"`
	Errors   int      `json:"errors" msgpack:"errors"`
	Warnings int      `json:"warnings" msgpack:"warnings"`
	Infos    int      `json:"infos" msgpack:"infos"`
}

func NewRecord(o logger.CompileOutput) Record {
	r := Record{
		Severity:   o.Category().String(),
		ID:         o.ID(),
		Number:     o.Number(),
		Message:    o.Message(),
		File:       o.File(),
		Code:       o.Code(),
		SourceCode: o.SourceCode(),
		Appendix:   o.Appendix(),
	}
	if pos := o.Position(); !pos.IsZero() {
		r.Position = &pos
	}
	return r
}

// NewDocument builds a Document from outputs, keeping their order.
func NewDocument(outputs []logger.CompileOutput) Document {
	doc := Document{Outputs: make([]Record, 0, len(outputs))}
	for _, o := range outputs {
		doc.Outputs = append(doc.Outputs, NewRecord(o))
		switch o.Category() {
		case logger.Error:
			doc.Errors++
		case logger.Warn:
			doc.Warnings++
		case logger.Info:
			doc.Infos++
		}
	}
	return doc
}
