package ir

// StreamOutput describes transform feedback captures produced by the
// linking stage.
type StreamOutput struct {
	Outputs []XfbOutput `yaml:"outputs"`
}

// XfbOutput captures a component range of one output. Register is the
// index of the captured output in Shader.Variables. DstOffset and Stride
// are in dwords.
type XfbOutput struct {
	Register       uint32 `yaml:"register"`
	StartComponent uint8  `yaml:"start_component,omitempty"`
	NumComponents  uint8  `yaml:"num_components"`
	Buffer         uint32 `yaml:"buffer"`
	DstOffset      uint32 `yaml:"dst_offset"`
	Stride         uint32 `yaml:"stride"`
	Stream         uint32 `yaml:"stream,omitempty"`
}
