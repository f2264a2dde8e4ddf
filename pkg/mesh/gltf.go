// Package mesh ingests glTF/GLB files into shape trees, tessellating each
// mesh's indexed triangle list into shape.Triangle nodes collected under a
// shape.Group (spec.md §6 "mesh already tessellated to triangles under
// Group nodes").
package mesh

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

// Load reads a glTF or GLB file at path and returns a Group shape containing
// one Triangle (or SmoothTriangle, when per-vertex normals are present) per
// tessellated face of every mesh in the document.
func Load(path string) (*shape.Shape, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var triangles []*shape.Shape
	for _, m := range doc.Meshes {
		ts, err := processMesh(doc, m)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
		triangles = append(triangles, ts...)
	}

	return shape.NewGroup(triangles...), nil
}

func processMesh(doc *gltf.Document, m *gltf.Mesh) ([]*shape.Shape, error) {
	var triangles []*shape.Shape

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Tuple
		hasNormals := false
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3NormalAccessor(doc, normIdx)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
			hasNormals = true
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			ia, ib, ic := indices[i], indices[i+1], indices[i+2]
			p1, p2, p3 := positions[ia], positions[ib], positions[ic]

			if hasNormals && ia < len(normals) && ib < len(normals) && ic < len(normals) {
				n1 := math3d.NormalFromVector(normals[ia])
				n2 := math3d.NormalFromVector(normals[ib])
				n3 := math3d.NormalFromVector(normals[ic])
				triangles = append(triangles, shape.NewSmoothTriangle(p1, p2, p3, n1, n2, n3))
			} else {
				triangles = append(triangles, shape.NewTriangle(p1, p2, p3))
			}
		}
	}

	return triangles, nil
}

// readVec3Accessor reads a VEC3 accessor's raw data as world-space points.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Tuple, error) {
	raw, err := readFloatTriples(doc, accessorIdx, gltf.AccessorVec3)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Tuple, len(raw))
	for i, f := range raw {
		result[i] = math3d.Point(f[0], f[1], f[2])
	}
	return result, nil
}

// readVec3NormalAccessor reads a VEC3 accessor's raw data as direction vectors.
func readVec3NormalAccessor(doc *gltf.Document, accessorIdx int) ([]math3d.Tuple, error) {
	raw, err := readFloatTriples(doc, accessorIdx, gltf.AccessorVec3)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Tuple, len(raw))
	for i, f := range raw {
		result[i] = math3d.Vector(f[0], f[1], f[2])
	}
	return result, nil
}

func readFloatTriples(doc *gltf.Document, accessorIdx int, wantType gltf.AccessorType) ([][3]float32, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != wantType {
		return nil, fmt.Errorf("expected %v, got %v", wantType, accessor.Type)
	}

	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12
	}
	count := accessor.Count

	result := make([][3]float32, count)
	for i := 0; i < count; i++ {
		offset := start + i*stride
		for j := 0; j < 3; j++ {
			result[i][j] = readFloat32(bufData[offset+j*4:])
		}
	}
	return result, nil
}

// readIndices reads a scalar index accessor, widening every component type
// to int.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	count := accessor.Count
	result := make([]int, count)

	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		stride := bufferView.ByteStride
		if stride == 0 {
			stride = 1
		}
		for i := 0; i < count; i++ {
			result[i] = int(bufData[start+i*stride])
		}
	case gltf.ComponentUshort:
		stride := bufferView.ByteStride
		if stride == 0 {
			stride = 2
		}
		for i := 0; i < count; i++ {
			offset := start + i*stride
			result[i] = int(uint16(bufData[offset]) | uint16(bufData[offset+1])<<8)
		}
	case gltf.ComponentUint:
		stride := bufferView.ByteStride
		if stride == 0 {
			stride = 4
		}
		for i := 0; i < count; i++ {
			offset := start + i*stride
			result[i] = int(uint32(bufData[offset]) |
				uint32(bufData[offset+1])<<8 |
				uint32(bufData[offset+2])<<16 |
				uint32(bufData[offset+3])<<24)
		}
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}

	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
