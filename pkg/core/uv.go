package core

// UV is a 2D surface coordinate used for texture sampling
type UV struct {
	U, V float64
}

// NewUV creates a new UV coordinate
func NewUV(u, v float64) UV {
	return UV{U: u, V: v}
}
