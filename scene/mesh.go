package scene

// MeshKind names a primitive the render collaborator knows how to build.
type MeshKind int

const (
	MeshBox MeshKind = iota
	MeshSphere
	MeshCylinder
	MeshCapsule
	MeshTorus
	MeshPlane
	MeshGround
)

func (k MeshKind) String() string {
	switch k {
	case MeshBox:
		return "box"
	case MeshSphere:
		return "sphere"
	case MeshCylinder:
		return "cylinder"
	case MeshCapsule:
		return "capsule"
	case MeshTorus:
		return "torus"
	case MeshPlane:
		return "plane"
	case MeshGround:
		return "ground"
	}
	return "unknown"
}

// Mesh is a primitive descriptor. Only the fields relevant to Kind are set.
type Mesh struct {
	Kind MeshKind

	// box, plane
	Width  float64
	Height float64
	Depth  float64

	// sphere
	DiameterX float64
	DiameterY float64
	DiameterZ float64

	// cylinder (cones have DiameterTop 0)
	DiameterTop    float64
	DiameterBottom float64

	// capsule
	Radius float64

	// torus
	Diameter     float64
	Thickness    float64
	Tessellation int

	// ground
	Subdivisions int
	Heights      []float64
}

func Box(width, height, depth float64) *Mesh {
	return &Mesh{Kind: MeshBox, Width: width, Height: height, Depth: depth}
}

func Sphere(dx, dy, dz float64) *Mesh {
	return &Mesh{Kind: MeshSphere, DiameterX: dx, DiameterY: dy, DiameterZ: dz}
}

func Cylinder(height, diameterTop, diameterBottom float64) *Mesh {
	return &Mesh{Kind: MeshCylinder, Height: height, DiameterTop: diameterTop, DiameterBottom: diameterBottom}
}

func Capsule(height, radius float64) *Mesh {
	return &Mesh{Kind: MeshCapsule, Height: height, Radius: radius}
}

func Torus(diameter, thickness float64, tessellation int) *Mesh {
	return &Mesh{Kind: MeshTorus, Diameter: diameter, Thickness: thickness, Tessellation: tessellation}
}

func Plane(width, height float64) *Mesh {
	return &Mesh{Kind: MeshPlane, Width: width, Height: height}
}

// Ground is a displaced grid of size x size with (subdivisions+1)^2 heights.
func Ground(size float64, subdivisions int, heights []float64) *Mesh {
	return &Mesh{Kind: MeshGround, Width: size, Depth: size, Subdivisions: subdivisions, Heights: heights}
}

// Footprint returns the half extents of the mesh on the local X/Z plane.
func (m *Mesh) Footprint() (halfX, halfZ float64) {
	if m == nil {
		return 0, 0
	}
	switch m.Kind {
	case MeshBox:
		return m.Width / 2, m.Depth / 2
	case MeshPlane:
		return m.Width / 2, 0
	case MeshSphere:
		return m.DiameterX / 2, m.DiameterZ / 2
	case MeshCylinder:
		r := max(m.DiameterTop, m.DiameterBottom) / 2
		return r, r
	case MeshCapsule:
		return m.Radius, m.Radius
	case MeshTorus:
		r := (m.Diameter + m.Thickness) / 2
		return r, r
	case MeshGround:
		return m.Width / 2, m.Depth / 2
	}
	return 0, 0
}
