package ir

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passthroughYAML = `
stage: fragment
variables:
  - name: color
    mode: input
    type: {base: float, bits: 32, components: 4}
    location: 1
    interp: flat
  - name: frag
    mode: output
    type: {base: float, bits: 32, components: 4}
entry:
  num_ssa: 4
  body:
    - block:
        index: 0
        instrs:
          - deref: {kind: var, dest: {index: 0, bits: 32, components: 1}, var: 0, type: {base: float, bits: 32, components: 4}}
          - intrinsic: {op: load_deref, dest: {index: 1, bits: 32, components: 4}, srcs: [{index: 0}]}
          - deref: {kind: var, dest: {index: 2, bits: 32, components: 1}, var: 1, type: {base: float, bits: 32, components: 4}}
          - intrinsic: {op: store_deref, srcs: [{index: 2}, {index: 1}], write_mask: 15}
`

func TestDecodeYAML(t *testing.T) {
	s, err := DecodeYAML(strings.NewReader(passthroughYAML))
	require.NoError(t, err)

	assert.Equal(t, StageFragment, s.Stage)
	require.Len(t, s.Variables, 2)
	assert.Equal(t, ModeInput, s.Variables[0].Mode)
	assert.Equal(t, InterpFlat, s.Variables[0].Interp)
	assert.Equal(t, uint32(1), s.Variables[0].Location)
	assert.Equal(t, BaseFloat, s.Variables[1].Type.Base)

	blk := FirstBlock(s.Entry.Body)
	require.NotNil(t, blk)
	require.Len(t, blk.Instrs, 4)
	assert.Equal(t, IntrStoreDeref, blk.Instrs[3].Intrinsic.Op)
	assert.Equal(t, uint8(0xf), blk.Instrs[3].Intrinsic.WriteMask)
}

func TestDecodeYAML_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("stage: vertex\nentyr: {}\n"))
	assert.Error(t, err)
}

func TestDecodeYAML_RejectsUnknownEnum(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("stage: mesh\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown stage "mesh"`)
}

func TestMsgpackRoundTrip(t *testing.T) {
	want, err := DecodeYAML(strings.NewReader(passthroughYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeMsgpack(&buf, want))
	got, err := DecodeMsgpack(&buf)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestSaveLoadShader(t *testing.T) {
	dir := t.TempDir()
	want := passthroughShader()
	want.Name = "passthrough"

	for _, name := range []string{"passthrough.yaml", "passthrough.nirb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveShader(path, want))
			got, err := LoadShader(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadShader_NameFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stage: vertex\nentry: {num_ssa: 0, body: []}\n"), 0o644))

	s, err := LoadShader(path)
	require.NoError(t, err)
	assert.Equal(t, "blit", s.Name)
	assert.Equal(t, StageVertex, s.Stage)
}

func TestLoadShader_UnknownExtension(t *testing.T) {
	_, err := LoadShader("shader.glsl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown file extension")
}

func TestLoadStreamOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xfb.yaml")
	data := `
outputs:
  - register: 0
    start_component: 1
    num_components: 3
    buffer: 2
    dst_offset: 4
    stride: 8
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	so, err := LoadStreamOutput(path)
	require.NoError(t, err)
	require.Len(t, so.Outputs, 1)
	assert.Equal(t, XfbOutput{
		StartComponent: 1, NumComponents: 3, Buffer: 2, DstOffset: 4, Stride: 8,
	}, so.Outputs[0])
}
