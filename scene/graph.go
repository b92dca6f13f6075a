// Package scene is the arena of renderable nodes handed to the render
// collaborator. Nodes are addressed by index and reference their parent by
// index; world transforms are produced by a separate Compose pass.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NodeID indexes a node in a Graph.
type NodeID int32

// NoNode is the parent of top-level nodes.
const NoNode NodeID = -1

// Node is a transform with an optional mesh and material.
type Node struct {
	Name     string
	Parent   NodeID
	Mesh     *Mesh
	Material *Material

	Position mgl64.Vec3
	// Rotation is Euler radians, applied yaw (Y), then pitch (X), then roll (Z).
	Rotation mgl64.Vec3
	Scaling  mgl64.Vec3

	Collidable bool

	released bool
	world    mgl64.Mat4
}

// Graph owns every node in a world.
type Graph struct {
	nodes    []Node
	released int
}

func NewGraph() *Graph {
	return &Graph{}
}

// AddTransform appends an empty transform node.
func (g *Graph) AddTransform(name string, parent NodeID) NodeID {
	return g.add(Node{Name: name, Parent: parent})
}

// AddMesh appends a mesh node.
func (g *Graph) AddMesh(name string, mesh *Mesh, parent NodeID) NodeID {
	return g.add(Node{Name: name, Parent: parent, Mesh: mesh})
}

func (g *Graph) add(n Node) NodeID {
	if g == nil {
		return NoNode
	}
	if !g.valid(n.Parent) {
		n.Parent = NoNode
	}
	n.Scaling = mgl64.Vec3{1, 1, 1}
	n.world = mgl64.Ident4()
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) valid(id NodeID) bool {
	return g != nil && id >= 0 && int(id) < len(g.nodes) && !g.nodes[id].released
}

// Node returns the live node for id, or nil.
func (g *Graph) Node(id NodeID) *Node {
	if !g.valid(id) {
		return nil
	}
	return &g.nodes[id]
}

// Len is the number of nodes ever added, released ones included.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Live is the number of nodes not yet released.
func (g *Graph) Live() int {
	if g == nil {
		return 0
	}
	return len(g.nodes) - g.released
}

// Released is the number of nodes released so far.
func (g *Graph) Released() int {
	if g == nil {
		return 0
	}
	return g.released
}

// Descendants returns id's live subtree excluding id, in creation order.
// Parents always precede their children in the arena, so one forward scan
// is enough.
func (g *Graph) Descendants(id NodeID) []NodeID {
	if !g.valid(id) {
		return nil
	}
	inTree := map[NodeID]bool{id: true}
	var out []NodeID
	for i := int(id) + 1; i < len(g.nodes); i++ {
		n := &g.nodes[i]
		if n.released || !inTree[n.Parent] {
			continue
		}
		inTree[NodeID(i)] = true
		out = append(out, NodeID(i))
	}
	return out
}

// Release deletes id and its subtree and returns how many nodes were freed.
// Slots are never reused, so stale ids stay invalid.
func (g *Graph) Release(id NodeID) int {
	if !g.valid(id) {
		return 0
	}
	ids := append([]NodeID{id}, g.Descendants(id)...)
	for _, n := range ids {
		g.nodes[n].released = true
	}
	g.released += len(ids)
	return len(ids)
}

// Each calls fn for every live node in index order.
func (g *Graph) Each(fn func(id NodeID, n *Node)) {
	if g == nil {
		return
	}
	for i := range g.nodes {
		if g.nodes[i].released {
			continue
		}
		fn(NodeID(i), &g.nodes[i])
	}
}

// Local returns the node's local matrix: T * Ry * Rx * Rz * S.
func (n *Node) Local() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl64.HomogRotate3DY(n.Rotation.Y()).
		Mul4(mgl64.HomogRotate3DX(n.Rotation.X())).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z()))
	s := mgl64.Scale3D(n.Scaling.X(), n.Scaling.Y(), n.Scaling.Z())
	return t.Mul4(r).Mul4(s)
}

// Compose recomputes world matrices for every live node.
func (g *Graph) Compose() {
	if g == nil {
		return
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.released {
			continue
		}
		local := n.Local()
		if g.valid(n.Parent) {
			n.world = g.nodes[n.Parent].world.Mul4(local)
		} else {
			n.world = local
		}
	}
}

// World returns the matrix computed by the last Compose.
func (g *Graph) World(id NodeID) mgl64.Mat4 {
	if !g.valid(id) {
		return mgl64.Ident4()
	}
	return g.nodes[id].world
}

// WorldPosition returns the translation of the node's world matrix.
func (g *Graph) WorldPosition(id NodeID) mgl64.Vec3 {
	return g.World(id).Col(3).Vec3()
}
