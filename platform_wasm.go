//go:build js && wasm

package main

// No filesystem in the browser
func snapshotSupported() bool {
	return false
}
