package lab

// Minimap canvas geometry. The map draws a 20x20 world square into 150px, but
// the canvas is only 120px tall and clicks are read back against a 16 unit
// world height; the two projections are not exact inverses on the z axis.
const (
	MinimapWidth  = 150.0
	MinimapHeight = 120.0

	minimapWorldSize   = 20.0
	minimapClickHeight = 16.0
)

// WorldToMinimap projects a floor position onto minimap pixels.
func WorldToMinimap(x, z float64) (px, py float64) {
	px = (x + minimapWorldSize/2) / minimapWorldSize * MinimapWidth
	py = (-z + minimapWorldSize/2) / minimapWorldSize * MinimapWidth
	return px, py
}

// MinimapToWorld turns a click on the minimap canvas into a floor position.
func MinimapToWorld(px, py float64) (x, z float64) {
	x = px/MinimapWidth*minimapWorldSize - minimapWorldSize/2
	z = -(py/MinimapHeight)*minimapClickHeight + minimapClickHeight/2
	return x, z
}
