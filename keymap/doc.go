// Package keymap names keys and binds them to application actions.
//
// Bindings are loaded from TOML:
//
//	[[binding]]
//	action = "step_left"
//	key = "Left"
//	repeat = "150ms"
//
//	[[binding]]
//	action = "boost"
//	key = "LeftShift"
//
// A binding with a repeat interval is registered with an
// input.KeyRepeater, so holding the key triggers the action once per
// interval. Key names are the gpucontext constants without the "Key"
// prefix; see KeyName and ParseKey.
package keymap
