package common

// Logical screen size the game lays out at.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// PixelsPerUnit converts world units to screen pixels at zoom 1.
const PixelsPerUnit = 40.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
