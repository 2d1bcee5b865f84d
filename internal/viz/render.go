package viz

import "github.com/san-kum/thermolab/internal/lab"

// RenderResult draws a result's series onto a braille canvas, all
// series sharing the vertical scale of their combined extent. If
// bandLo < bandHi (in X units), the area under the first series inside
// that band is shaded, for the radiated-energy band.
func RenderResult(result *lab.Result, width, height int, bandLo, bandHi float64) *Canvas {
	canvas := NewCanvas(width, height)
	if len(result.X) < 2 || len(result.Series) == 0 {
		return canvas
	}

	cw, ch := width*2, height*4
	xMin, xMax := result.X[0], result.X[len(result.X)-1]
	if xMax == xMin {
		return canvas
	}

	yMin, yMax := result.Series[0].Y[0], result.Series[0].Y[0]
	for _, s := range result.Series {
		for _, v := range s.Y {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	px := func(x float64) int {
		return int(float64(cw-1) * (x - xMin) / (xMax - xMin))
	}
	py := func(y float64) int {
		return ch - 1 - int(float64(ch-1)*(y-yMin)/(yMax-yMin))
	}

	baseline := py(0)
	if bandLo < bandHi {
		for i := range result.X {
			x := result.X[i]
			if x < bandLo || x > bandHi {
				continue
			}
			canvas.FillColumn(px(x), py(result.Series[0].Y[i]), baseline)
		}
	}

	for _, s := range result.Series {
		prevX, prevY := px(result.X[0]), py(s.Y[0])
		for i := 1; i < len(result.X) && i < len(s.Y); i++ {
			x, y := px(result.X[i]), py(s.Y[i])
			canvas.DrawLine(prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	}

	return canvas
}
