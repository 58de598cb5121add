// Package tile: types.go declares Base, Transform, and Variant.
package tile

import "github.com/katalvlaran/wfc/socket"

// Base is one tile definition as authored: an identifier shared by every
// Variant derived from it, a layer partition tag, a positive integer
// weight, and the four untransformed edge sockets indexed by socket.Side.
type Base struct {
	ID      int
	Layer   int
	Weight  uint32
	Sockets [4]socket.Socket
}

// Transform is a rigid transform applied to a Base: a number of clockwise
// quarter turns plus independent horizontal/vertical mirroring.
type Transform struct {
	Rotation socket.Rotation
	FlipX    bool
	FlipY    bool
}

// Variant is a Base viewed through one Transform. The solver's catalog is a
// flat list of Variants; the same Base.ID may appear on up to 16 of them.
type Variant struct {
	Base      Base
	Transform Transform
}

// ID returns the shared base identifier, preserved across every transform
// so a renderer can look up the original artwork.
func (v Variant) ID() int { return v.Base.ID }

// Layer returns the variant's layer partition tag.
func (v Variant) Layer() int { return v.Base.Layer }

// Weight returns the variant's sampling weight.
func (v Variant) Weight() uint32 { return v.Base.Weight }

// RotationValue returns the variant's rotation component.
func (v Variant) RotationValue() socket.Rotation { return v.Transform.Rotation }

// XFlipped reports whether the variant is mirrored horizontally.
func (v Variant) XFlipped() bool { return v.Transform.FlipX }

// YFlipped reports whether the variant is mirrored vertically.
func (v Variant) YFlipped() bool { return v.Transform.FlipY }
