package biome

// Fixed band heights on the 0-255 scale.
const (
	SandMargin     = 15.0
	MountainHeight = 150.0
	SnowHeight     = 210.0
)

// WaterHeight is the height below which terrain is water.
func WaterHeight(seaLevel float64) float64 {
	return seaLevel * 255
}

// Classify picks the band for height. The checks run in a fixed order and
// the first match wins; the snow and mountain heights do not move with the
// sea level, so a high sea level can put sand directly against snow.
func Classify(height, seaLevel float64) Band {
	water := WaterHeight(seaLevel)
	sand := water + SandMargin

	switch {
	case height < water:
		return Water
	case height < sand:
		return Sand
	case height > SnowHeight:
		return Snow
	case height > MountainHeight:
		return Mountain
	default:
		return Grass
	}
}
