// Package threemf writes a mesh.MeshD as a 3MF model, an alternate
// container to the binary STL writer sharing the same mesher output.
package threemf

import (
	"io"

	"github.com/chazu/strata/pkg/mesh"
	"github.com/chazu/strata/pkg/strerr"
	"github.com/hpinc/go3mf"
)

// Write serializes m as a single-object 3MF model named name.
func Write(w io.Writer, name string, m mesh.MeshD) error {
	model := &go3mf.Model{}
	mesh3mf := &go3mf.Mesh{}

	for _, v := range m.Vertices {
		mesh3mf.Vertices.Vertex = append(mesh3mf.Vertices.Vertex, go3mf.Point3D{
			float32(v.X), float32(v.Y), float32(v.Z),
		})
	}
	for _, t := range m.Triangles {
		mesh3mf.Triangles.Triangle = append(mesh3mf.Triangles.Triangle, go3mf.Triangle{
			V1: t.A, V2: t.B, V3: t.C,
		})
	}

	obj := &go3mf.Object{
		ID:   1,
		Name: name,
		Mesh: mesh3mf,
	}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	enc := go3mf.NewEncoder(w)
	if err := enc.Encode(model); err != nil {
		return strerr.Wrap(strerr.IoError, err, "threemf: encode model")
	}
	return nil
}
