package common

const (
	TileSize = 32

	BaseWidth  = 640
	BaseHeight = 480

	// TPS is the fixed simulation rate. Frame counters assume it.
	TPS = 60
)
