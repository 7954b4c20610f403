// Package opcode is the numbering registry of the Prism instruction set.
//
// The tag enumerations in this package name every instruction, register,
// delay unit and addressing flag. A Registry maps those tags onto the
// integers the device interpreter expects; the encoder only ever asks the
// Registry, so a different numbering can be swapped in without touching the
// encoding logic.
package opcode
