package pge

// Config describes the screen a Game runs on. The window is
// ScreenWidth*PixelWidth by ScreenHeight*PixelHeight device pixels.
type Config struct {
	Title        string
	ScreenWidth  int // logical pixels
	ScreenHeight int // logical pixels
	PixelWidth   int // device pixels per logical pixel, horizontally
	PixelHeight  int // device pixels per logical pixel, vertically
	FullScreen   bool
}

// Validate reports an invalid screen or pixel size.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errorf("Invalid screen size: (%d, %d)", c.ScreenWidth, c.ScreenHeight)
	}
	if c.PixelWidth <= 0 || c.PixelHeight <= 0 ||
		c.PixelWidth > c.ScreenWidth || c.PixelHeight > c.ScreenHeight {
		return errorf("Invalid pixel size: (%d, %d)", c.PixelWidth, c.PixelHeight)
	}
	return nil
}

// WindowSize returns the window size in device pixels.
func (c Config) WindowSize() (int, int) {
	return c.ScreenWidth * c.PixelWidth, c.ScreenHeight * c.PixelHeight
}

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	Hz     int    // frames per second; 0 means 60
	Frames uint64 // stop after this many frames; 0 runs until the context ends
	Script *InputScript
}
