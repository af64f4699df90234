// Package iox provides the shared Open/Save/Write helpers that tomlx,
// yamlx, and jsonx each wrap with a concrete format's decoder/encoder
// constructor, so none of the three has to reimplement file handling.
package iox

import (
	"bytes"
	"io"
	"os"
)

// Decoder is anything that can decode into v, matching the shape of
// encoding/json.Decoder, gopkg.in/yaml.v3's Decoder, and toml.Decoder.
type Decoder interface {
	Decode(v any) error
}

// Encoder is anything that can encode v, matching the shape of the same
// three packages' Encoder types.
type Encoder interface {
	Encode(v any) error
}

// DecoderFunc constructs a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// EncoderFunc constructs an Encoder writing to w.
type EncoderFunc func(w io.Writer) Encoder

// NewDecoderFunc adapts a format package's own `NewDecoder(io.Reader) *T`
// constructor (T satisfying Decoder) into a DecoderFunc, for formats
// whose constructor doesn't already return the Decoder interface.
func NewDecoderFunc[T Decoder](newDecoder func(io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return newDecoder(r) }
}

// NewEncoderFunc is NewDecoderFunc's Encoder counterpart.
func NewEncoderFunc[T Encoder](newEncoder func(io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return newEncoder(w) }
}

// Open reads v from filename using newDecoder.
func Open(v any, filename string, newDecoder DecoderFunc) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return newDecoder(f).Decode(v)
}

// Save writes v to filename using newEncoder.
func Save(v any, filename string, newEncoder EncoderFunc) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return newEncoder(f).Encode(v)
}

// Write encodes v to writer using newEncoder.
func Write(v any, writer io.Writer, newEncoder EncoderFunc) error {
	return newEncoder(writer).Encode(v)
}

// WriteBytes encodes v using newEncoder and returns the result.
func WriteBytes(v any, newEncoder EncoderFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf, newEncoder); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
