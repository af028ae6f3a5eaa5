package trilight

// TextComponent puts a screen-space text block on an entity. The
// renderer sync system forwards every non-empty block to the overlay
// text pass each frame; an empty Text hides the block without
// removing the entity.
type TextComponent struct {
	Text     string
	Position [2]float32 // Pixels, top-left origin
	Scale    float32
	Color    [4]float32 // RGBA, 0..1
}
