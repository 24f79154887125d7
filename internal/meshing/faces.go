package meshing

// Face identifies one of the six axis-aligned cube faces.
type Face int

const (
	FaceNegZ Face = iota
	FacePosZ
	FaceNegX
	FacePosX
	FaceNegY
	FacePosY

	faceCount
)

// faceDef describes a cube face: the neighbor offset along its outward normal
// and its four corners (in units of the half extent) in CCW order seen from outside.
type faceDef struct {
	normal  [3]int
	corners [4][3]float32
}

var faceDefs = [faceCount]faceDef{
	FaceNegZ: {
		normal:  [3]int{0, 0, -1},
		corners: [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	},
	FacePosZ: {
		normal:  [3]int{0, 0, 1},
		corners: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	},
	FaceNegX: {
		normal:  [3]int{-1, 0, 0},
		corners: [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	},
	FacePosX: {
		normal:  [3]int{1, 0, 0},
		corners: [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	},
	FaceNegY: {
		normal:  [3]int{0, -1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	},
	FacePosY: {
		normal:  [3]int{0, 1, 0},
		corners: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	},
}

// quadOrder lists the corners of the two triangles covering a face: v0,v1,v2 then v2,v3,v0.
var quadOrder = [6]int{0, 1, 2, 2, 3, 0}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() [3]int {
	return faceDefs[f].normal
}
