package spvgen

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/spvgen/ir"
	"github.com/gogpu/spvgen/spirv"
)

func vec4() ir.Type { return ir.Vector(ir.BaseFloat, 32, 4) }

// fragmentShader writes a constant color.
func fragmentShader() *ir.Shader {
	b := ir.NewBuilder(ir.StageFragment)
	out := b.AddVariable(ir.Variable{Name: "color", Mode: ir.ModeOutput, Type: vec4()})
	b.StoreVar(out, b.ConstFloat32(1, 0, 0, 1))
	return b.Shader()
}

// vertexShader forwards a position attribute.
func vertexShader() *ir.Shader {
	b := ir.NewBuilder(ir.StageVertex)
	in := b.AddVariable(ir.Variable{Name: "position", Mode: ir.ModeInput, Type: vec4()})
	out := b.AddVariable(ir.Variable{Name: "gl_Position", Mode: ir.ModeOutput, Type: vec4(), Builtin: ir.BuiltinPosition})
	b.StoreVar(out, b.LoadVar(in))
	return b.Shader()
}

func checkHeader(t *testing.T, data []byte, version spirv.Version) {
	t.Helper()
	if len(data) < 20 || len(data)%4 != 0 {
		t.Fatalf("SPIR-V output has %d bytes", len(data))
	}
	if magic := binary.LittleEndian.Uint32(data); magic != spirv.MagicNumber {
		t.Errorf("Invalid SPIR-V magic: got 0x%08x, want 0x%08x", magic, spirv.MagicNumber)
	}
	want := uint32(version.Major)<<16 | uint32(version.Minor)<<8
	if got := binary.LittleEndian.Uint32(data[4:]); got != want {
		t.Errorf("version word = 0x%08x, want 0x%08x", got, want)
	}
}

func TestCompile(t *testing.T) {
	data, err := Compile(fragmentShader(), DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	checkHeader(t, data, spirv.Version1_3)
}

func TestCompileTargetVersion(t *testing.T) {
	opts := DefaultOptions()
	opts.SPIRVVersion = spirv.Version1_5
	data, err := Compile(vertexShader(), opts)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	checkHeader(t, data, spirv.Version1_5)
}

func TestCompileValidationFailure(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	b.AddVariable(ir.Variable{Name: "tex", Mode: ir.ModeUniform, Type: vec4()})
	shader := b.Shader()

	_, err := Compile(shader, DefaultOptions())
	var verrs ir.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want ir.ValidationErrors", err)
	}
	if len(verrs) != 1 {
		t.Errorf("got %d validation errors, want 1", len(verrs))
	}

	// Without validation the backend rejects the shader itself.
	opts := DefaultOptions()
	opts.Validate = false
	if _, err := Compile(shader, opts); err == nil {
		t.Error("expected a backend error")
	}
}

func TestCompileBackendError(t *testing.T) {
	opts := DefaultOptions()
	opts.StreamOutput = &ir.StreamOutput{Outputs: []ir.XfbOutput{{NumComponents: 4}}}
	_, err := Compile(fragmentShader(), opts)

	var serr *spirv.Error
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want *spirv.Error", err)
	}
	if serr.Kind != spirv.ErrMalformedIR {
		t.Errorf("error kind = %s, want MalformedIR", serr.Kind)
	}
	if !strings.HasPrefix(err.Error(), "SPIR-V generation error: ") {
		t.Errorf("error %q is not wrapped", err)
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	want, err := Compile(vertexShader(), DefaultOptions())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	for _, name := range []string{"vert.yaml", "vert.nirb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ir.SaveShader(path, vertexShader()); err != nil {
				t.Fatalf("SaveShader: %v", err)
			}
			got, err := CompileFile(path, DefaultOptions())
			if err != nil {
				t.Fatalf("CompileFile failed: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Error("module compiled from file differs from the in-memory compile")
			}
		})
	}
}

func TestCompileFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := CompileFile(filepath.Join(dir, "shader.glsl"), DefaultOptions()); err == nil {
		t.Error("expected an error for an unknown extension")
	}
	if _, err := CompileFile(filepath.Join(dir, "missing.yaml"), DefaultOptions()); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(dir, "frag.yaml")
	if err := ir.SaveShader(path, fragmentShader()); err != nil {
		t.Fatalf("SaveShader: %v", err)
	}
	opts := DefaultOptions()
	opts.StreamOutput = &ir.StreamOutput{Outputs: []ir.XfbOutput{{NumComponents: 4}}}
	_, err := CompileFile(path, opts)
	if err == nil || !strings.HasPrefix(err.Error(), path+": ") {
		t.Errorf("error = %v, want it prefixed with the path", err)
	}
}

func TestCompileAll(t *testing.T) {
	jobs := []Job{
		{Name: "vert", Shader: vertexShader(), Options: DefaultOptions()},
		{Name: "frag", Shader: fragmentShader(), Options: DefaultOptions()},
		{Name: "vert-1.5", Shader: vertexShader(), Options: Options{SPIRVVersion: spirv.Version1_5}},
	}
	for _, limit := range []int{0, 1, 2} {
		results, err := CompileAll(context.Background(), jobs, limit)
		if err != nil {
			t.Fatalf("limit %d: CompileAll failed: %v", limit, err)
		}
		if len(results) != len(jobs) {
			t.Fatalf("limit %d: got %d results, want %d", limit, len(results), len(jobs))
		}
		for i, r := range results {
			if r.Name != jobs[i].Name {
				t.Errorf("limit %d: result %d is %q, want %q", limit, i, r.Name, jobs[i].Name)
			}
			want, err := Compile(jobs[i].Shader, jobs[i].Options)
			if err != nil {
				t.Fatalf("Compile %s: %v", jobs[i].Name, err)
			}
			if !bytes.Equal(r.Binary, want) {
				t.Errorf("limit %d: %s differs from a sequential compile", limit, r.Name)
			}
		}
	}
}

func TestCompileAllError(t *testing.T) {
	bad := DefaultOptions()
	bad.StreamOutput = &ir.StreamOutput{Outputs: []ir.XfbOutput{{NumComponents: 4}}}
	jobs := []Job{
		{Name: "vert", Shader: vertexShader(), Options: DefaultOptions()},
		{Name: "frag", Shader: fragmentShader(), Options: bad},
	}
	results, err := CompileAll(context.Background(), jobs, 2)
	if err == nil {
		t.Fatal("expected an error")
	}
	if results != nil {
		t.Error("results returned alongside an error")
	}
	if !strings.HasPrefix(err.Error(), "frag: ") {
		t.Errorf("error %q does not name the failing job", err)
	}
}

func TestCompileAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := []Job{{Name: "frag", Shader: fragmentShader(), Options: DefaultOptions()}}
	if _, err := CompileAll(ctx, jobs, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func BenchmarkCompile(b *testing.B) {
	shader := vertexShader()
	opts := DefaultOptions()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Compile(shader, opts); err != nil {
			b.Fatal(err)
		}
	}
}
