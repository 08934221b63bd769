// Package spirv translates ir shaders to SPIR-V binaries.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// consumed by Vulkan drivers.
//
// # Backend
//
// The Backend compiles one shader stage into one module:
//
//	backend := spirv.NewBackend(spirv.DefaultOptions())
//	binary, err := backend.Compile(shader)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// A Backend holds no per-shader state and may be shared between
// goroutines. Each Compile runs in its own session that owns the type
// interner, the variable bindings and the value table; nothing outlives
// the call. Failures are reported as *Error with a Kind of
// ErrUnsupported, ErrMalformedIR or ErrInternal, and no partial binary
// is returned.
//
// Transform feedback captures are passed through Options.StreamOutput.
// Each capture gets a dedicated float output variable that is written
// at the end of the shader, or before every emitted vertex in geometry
// shaders.
//
// # Binary Writer
//
// ModuleBuilder is the low-level writer the backend emits through. It
// keeps every logical section in its own word stream and concatenates
// them in the order the format requires:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//	binary := builder.Build()
//
// Interner deduplicates types and constants on top of a ModuleBuilder
// so that structurally equal requests share one result id.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
