//go:build !voxeldebug

package world

func checkBlockType(BlockType) {}
