//go:build !js || !wasm

package main

// Native builds can write to disk
func snapshotSupported() bool {
	return true
}
