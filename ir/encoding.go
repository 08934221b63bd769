package ir

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Encoding is an on-disk IR encoding.
type Encoding int

const (
	// EncodingYAML is the human-editable text form.
	EncodingYAML Encoding = iota
	// EncodingMsgpack is the compact binary form (.nirb).
	EncodingMsgpack
)

// EncodingForPath picks the encoding from a file extension.
func EncodingForPath(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML, nil
	case ".nirb":
		return EncodingMsgpack, nil
	default:
		return 0, fmt.Errorf("ir: unknown file extension %q", filepath.Ext(path))
	}
}

// DecodeYAML parses a shader from YAML. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Shader, error) {
	var s Shader
	if err := decodeYAML(r, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EncodeYAML writes a shader as YAML.
func EncodeYAML(w io.Writer, s *Shader) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("ir: encode yaml: %w", err)
	}
	return enc.Close()
}

// DecodeMsgpack parses a shader from its binary form.
func DecodeMsgpack(r io.Reader) (*Shader, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("yaml")
	var s Shader
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("ir: decode msgpack: %w", err)
	}
	return &s, nil
}

// EncodeMsgpack writes a shader in its binary form. Field names follow
// the YAML names so both encodings describe the same schema.
func EncodeMsgpack(w io.Writer, s *Shader) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("yaml")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("ir: encode msgpack: %w", err)
	}
	return nil
}

// LoadShader reads a shader file, choosing the decoder by extension.
func LoadShader(path string) (*Shader, error) {
	enc, err := EncodingForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ir: read %s: %w", path, err)
	}
	var s *Shader
	switch enc {
	case EncodingMsgpack:
		s, err = DecodeMsgpack(bytes.NewReader(data))
	default:
		s, err = DecodeYAML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// SaveShader writes a shader file, choosing the encoder by extension.
func SaveShader(path string, s *Shader) error {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch enc {
	case EncodingMsgpack:
		err = EncodeMsgpack(&buf, s)
	default:
		err = EncodeYAML(&buf, s)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadStreamOutput reads a transform feedback descriptor from YAML.
func LoadStreamOutput(path string) (*StreamOutput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ir: read %s: %w", path, err)
	}
	defer f.Close()
	var so StreamOutput
	if err := decodeYAML(f, &so); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &so, nil
}

func decodeYAML(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("ir: decode yaml: %w", err)
	}
	return nil
}
