//go:build voxeldebug

package world

import "fmt"

// Debug builds reject ids outside the known enumeration.
func checkBlockType(b BlockType) {
	if !b.Valid() {
		panic(fmt.Sprintf("world: unknown block type %d", uint8(b)))
	}
}
