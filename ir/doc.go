// Package ir defines the shader intermediate representation consumed by
// the SPIR-V backend.
//
// The IR describes one finished shader stage. Optimization and lowering
// have already happened upstream: intrinsics are resolved, derefs are
// explicit, and control flow is structured.
//
// # Structure
//
// A Shader contains:
//   - Variables: module-scope inputs, outputs, buffers, images, samplers,
//     shared memory and push constants
//   - Entry: the single entry function, a tree of Blocks, Ifs and Loops
//   - Info: per-stage metadata (fragment, geometry, tessellation, compute)
//
// # Values
//
// SSA values are typeless. Each carries only a bit size and a component
// count; every use reinterprets the bits as the operation requires. ALU
// ops describe the interpretation of their operands through ALUInfo.
// Registers are mutable values used across structured control flow.
//
// # Encodings
//
// Shaders round-trip through YAML for hand-written test inputs and
// through msgpack (.nirb) for compact storage. See LoadShader.
package ir
