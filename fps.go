package pge

// fpsCounter counts frames over one-second windows of elapsed frame time.
type fpsCounter struct {
	timer  float32
	frames int
	fps    int
	ready  bool
}

// tick records one frame and reports whether a window just completed.
func (f *fpsCounter) tick(elapsed float32) bool {
	f.timer += elapsed
	f.frames++
	if f.timer < 1 {
		return false
	}
	f.fps = f.frames
	f.frames = 0
	f.timer = 0
	f.ready = true
	return true
}
