package installation

import "luminary/internal/sims/hanabi"

// PressureMask returns the committed pressure field scaled to [0, 1] by the
// press radius. The slice is reused across calls.
func (w *World) PressureMask() []float32 {
	w.pressureMask = fillMask(w.pressureMask, w.cells, func(xy int) float32 {
		return float32(w.pressure.Current()[xy].Orth) / float32(w.cfg.Params.PressureRadius)
	})
	return w.pressureMask
}

// SparkMask returns the committed spark intensities scaled to [0, 1].
func (w *World) SparkMask() []float32 {
	w.sparkMask = fillMask(w.sparkMask, w.cells, func(xy int) float32 {
		return float32(w.sparks.Current()[xy].Orth) / hanabi.SparkIntensity
	})
	return w.sparkMask
}

func fillMask(dst []float32, n int, at func(xy int) float32) []float32 {
	if len(dst) != n {
		dst = make([]float32, n)
	}
	for xy := range dst {
		dst[xy] = min(1, max(0, at(xy)))
	}
	return dst
}
