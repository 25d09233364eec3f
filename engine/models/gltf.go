package models

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/1siamBot/csg-viewer/engine/geom"
	"github.com/1siamBot/csg-viewer/engine/math3d"
)

// LoadGLB reads a glTF/GLB file and returns its triangles as a world-space
// list, ready for the render pipeline. Only embedded (GLB) buffers are
// supported; materials, normals and UVs are ignored since the viewer shades
// by depth alone.
func LoadGLB(path string) ([]geom.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var tris []geom.Triangle
	for _, m := range doc.Meshes {
		got, err := meshTriangles(doc, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		tris = append(tris, got...)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("%s: no triangle geometry", path)
	}
	return tris, nil
}

func meshTriangles(doc *gltf.Document, m *gltf.Mesh) ([]geom.Triangle, error) {
	var tris []geom.Triangle
	for _, prim := range m.Primitives {
		// Mode 0 covers documents that omit the field entirely
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

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := indices[i], indices[i+1], indices[i+2]
				if a >= len(positions) || b >= len(positions) || c >= len(positions) {
					return nil, fmt.Errorf("index out of range")
				}
				tris = append(tris, geom.Triangle{P0: positions[a], P1: positions[b], P2: positions[c]})
			}
		} else {
			for i := 0; i+2 < len(positions); i += 3 {
				tris = append(tris, geom.Triangle{P0: positions[i], P1: positions[i+1], P2: positions[i+2]})
			}
		}
	}
	return tris, nil
}

// readVec3Accessor reads a VEC3 float accessor into Vec3s.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3 accessor")
	}

	data, start, stride, err := accessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	if stride == 0 {
		stride = 12
	}

	out := make([]math3d.Vec3, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := start + i*stride
		if off+12 > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer")
		}
		out[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return out, nil
}

// readIndices reads a scalar index accessor of any legal component width.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR accessor for indices")
	}

	data, start, stride, err := accessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unexpected index component type %v", accessor.ComponentType)
	}
	if stride == 0 {
		stride = width
	}

	out := make([]int, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := start + i*stride
		if off+width > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer")
		}
		switch width {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}

// accessorData resolves an accessor to its backing bytes, start offset and
// stride.
func accessorData(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]

	if buffer.URI != "" {
		return nil, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}
	return buffer.Data, view.ByteOffset + accessor.ByteOffset, view.ByteStride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
