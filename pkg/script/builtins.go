package script

import (
	"fmt"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/revoxel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpSolid wraps a kernel.VoxelSolid so it can be passed between
// builtins as an ordinary Lisp value.
type sexpSolid struct {
	solid *kernel.VoxelSolid
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %d cells)", s.solid.Len())
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// emitted holds the solid captured by the program's (emit ...) call.
type emitted struct {
	solid *kernel.VoxelSolid
}

func toSolid(s zygo.Sexp) (*kernel.VoxelSolid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt32(s zygo.Sexp) (int32, error) {
	f, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	return int32(f), nil
}

func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if name, ok := isKW(str.S); ok {
		return name, nil
	}
	return str.S, nil
}

func toAxis(s zygo.Sexp) (kernel.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected axis keyword (:x, :y, :z): %w", err)
	}
	switch name {
	case "x":
		return kernel.AxisX, nil
	case "y":
		return kernel.AxisY, nil
	case "z":
		return kernel.AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y, or z", name)
}

func wantArgs(name string, args []zygo.Sexp, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// registerBuiltins installs every voxel-script builtin into a zygomys
// environment. Geometry builtins are pure: they consume sexpSolid
// arguments and return a new sexpSolid, mirroring zygomys's normal
// value-in/value-out function model. (emit solid) is the only builtin
// with a side effect: it records the program's result.
func registerBuiltins(env *zygo.Zlisp, out *emitted) {
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 6); err != nil {
			return zygo.SexpNull, err
		}
		nums := make([]int32, 6)
		for i, a := range args {
			v, err := toInt32(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: arg %d: %w", i, err)
			}
			nums[i] = v
		}
		min := kernel.Cell{X: nums[0], Y: nums[1], Z: nums[2]}
		maxExcl := kernel.Cell{X: nums[3], Y: nums[4], Z: nums[5]}
		return &sexpSolid{solid: kernel.Box(min, maxExcl)}, nil
	})

	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 4); err != nil {
			return zygo.SexpNull, err
		}
		cx, err := toInt32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: cx: %w", err)
		}
		cy, err := toInt32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: cy: %w", err)
		}
		cz, err := toInt32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: cz: %w", err)
		}
		r, err := toFloat64(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: r: %w", err)
		}
		return &sexpSolid{solid: kernel.Sphere(kernel.Cell{X: cx, Y: cy, Z: cz}, r)}, nil
	})

	env.AddFunction("cylinder_z", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 5); err != nil {
			return zygo.SexpNull, err
		}
		cx, err := toInt32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder-z: cx: %w", err)
		}
		cy, err := toInt32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder-z: cy: %w", err)
		}
		zMin, err := toInt32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder-z: zmin: %w", err)
		}
		zMax, err := toInt32(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder-z: zmax: %w", err)
		}
		r, err := toFloat64(args[4])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder-z: r: %w", err)
		}
		return &sexpSolid{solid: kernel.CylinderZ(cx, cy, zMin, zMax, r)}, nil
	})

	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 4); err != nil {
			return zygo.SexpNull, err
		}
		dx, err := toInt32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dx: %w", err)
		}
		dy, err := toInt32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dy: %w", err)
		}
		dz, err := toInt32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: dz: %w", err)
		}
		s, err := toSolid(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: solid: %w", err)
		}
		return &sexpSolid{solid: kernel.Translate(s, kernel.Cell{X: dx, Y: dy, Z: dz})}, nil
	})

	env.AddFunction("rotate90", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 3); err != nil {
			return zygo.SexpNull, err
		}
		axis, err := toAxis(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate90: axis: %w", err)
		}
		turns, err := toInt32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate90: turns: %w", err)
		}
		s, err := toSolid(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate90: solid: %w", err)
		}
		return &sexpSolid{solid: kernel.Rotate90(s, axis, int(turns))}, nil
	})

	env.AddFunction("mirror", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 2); err != nil {
			return zygo.SexpNull, err
		}
		axis, err := toAxis(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mirror: axis: %w", err)
		}
		s, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mirror: solid: %w", err)
		}
		return &sexpSolid{solid: kernel.Mirror(s, axis)}, nil
	})

	env.AddFunction("rotate_any", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 3); err != nil {
			return zygo.SexpNull, err
		}
		axis, err := toAxis(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-any: axis: %w", err)
		}
		degrees, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-any: degrees: %w", err)
		}
		s, err := toSolid(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-any: solid: %w", err)
		}
		rotated, err := revoxel.Revoxelize(s, revoxel.Options{Axis: axis, Degrees: degrees})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-any: %w", err)
		}
		return &sexpSolid{solid: rotated}, nil
	})

	env.AddFunction("union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return foldSolids(name, args, kernel.Union)
	})
	env.AddFunction("subtract", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return foldSolids(name, args, kernel.Subtract)
	})
	env.AddFunction("intersect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return foldSolids(name, args, kernel.Intersect)
	})

	env.AddFunction("emit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := wantArgs(name, args, 1); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("emit: %w", err)
		}
		out.solid = s
		return args[0], nil
	})
}

func foldSolids(name string, args []zygo.Sexp, op func(a, b *kernel.VoxelSolid) *kernel.VoxelSolid) (zygo.Sexp, error) {
	if len(args) == 0 {
		return zygo.SexpNull, fmt.Errorf("%s: expected at least one solid argument", name)
	}
	acc, err := toSolid(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: arg 0: %w", name, err)
	}
	for i, a := range args[1:] {
		s, err := toSolid(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: arg %d: %w", name, i+1, err)
		}
		acc = op(acc, s)
	}
	return &sexpSolid{solid: acc}, nil
}
