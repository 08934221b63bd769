// Package spvgen compiles shader IR to SPIR-V.
//
// spvgen takes one shader stage in the ir package's form and produces a
// SPIR-V module ready for Vulkan:
//
//	b := ir.NewBuilder(ir.StageFragment)
//	out := b.AddVariable(ir.Variable{Name: "color", Mode: ir.ModeOutput, Type: ir.Vector(ir.BaseFloat, 32, 4)})
//	b.StoreVar(out, b.ConstFloat32(1, 0, 0, 1))
//	binary, err := spvgen.Compile(b.Shader(), spvgen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Shaders stored on disk as YAML (.yaml, .yml) or msgpack (.nirb) are
// compiled with CompileFile. CompileAll compiles independent stages
// concurrently.
//
// For lower-level control, use the spirv package directly:
//
//	binary, err := spirv.NewBackend(spirv.DefaultOptions()).Compile(shader)
package spvgen

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/spvgen/ir"
	"github.com/gogpu/spvgen/spirv"
)

// Options configures shader compilation.
type Options struct {
	// SPIRVVersion is the target SPIR-V version (default: 1.3)
	SPIRVVersion spirv.Version

	// StreamOutput describes transform feedback captures, if any.
	StreamOutput *ir.StreamOutput

	// Debug emits OpName for variables and types.
	Debug bool

	// Validate enables IR validation before code generation
	Validate bool

	// Logger receives backend debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		SPIRVVersion: spirv.Version1_3,
		Debug:        false,
		Validate:     true,
	}
}

func (o Options) backend() spirv.Options {
	return spirv.Options{
		Version:      o.SPIRVVersion,
		StreamOutput: o.StreamOutput,
		Debug:        o.Debug,
		Logger:       o.Logger,
	}
}

// Compile translates one shader stage to a SPIR-V binary.
//
// The pipeline is:
//  1. Validate IR (if enabled)
//  2. Generate SPIR-V
func Compile(shader *ir.Shader, opts Options) ([]byte, error) {
	if opts.Validate {
		validationErrors, err := ir.Validate(shader)
		if err != nil {
			return nil, fmt.Errorf("validation error: %w", err)
		}
		if len(validationErrors) > 0 {
			return nil, fmt.Errorf("validation failed: %w", ir.ValidationErrors(validationErrors))
		}
	}

	binary, err := spirv.NewBackend(opts.backend()).Compile(shader)
	if err != nil {
		return nil, fmt.Errorf("SPIR-V generation error: %w", err)
	}
	return binary, nil
}

// CompileFile loads a shader from path and compiles it. The IR encoding
// is chosen by extension.
func CompileFile(path string, opts Options) ([]byte, error) {
	shader, err := ir.LoadShader(path)
	if err != nil {
		return nil, err
	}
	binary, err := Compile(shader, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return binary, nil
}

// Job is one stage for CompileAll.
type Job struct {
	Name    string
	Shader  *ir.Shader
	Options Options
}

// Result is the compiled module of one Job.
type Result struct {
	Name   string
	Binary []byte
}

// CompileAll compiles independent stages concurrently, running at most
// limit at once (no limit when limit <= 0). Each stage gets its own
// backend. Results are in the order of jobs. The first failure cancels
// the stages not yet started and is returned.
func CompileAll(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			binary, err := Compile(job.Shader, job.Options)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = Result{Name: job.Name, Binary: binary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
