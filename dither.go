package piclut

import (
	"math"
	"math/rand"
	"sync"
)

// blueNoiseTexture is a small tileable noise map with values in
// [-0.5, 0.5], used to break up banding in smooth gradients when the
// graded output is quantized to 8 bits.
type blueNoiseTexture struct {
	size   int
	values []float64
}

func (t *blueNoiseTexture) at(x, y int) float64 {
	return t.values[(y%t.size)*t.size+x%t.size]
}

// generateBlueNoise approximates blue noise by summing sine products at
// several incommensurate frequencies plus a small seeded uniform
// perturbation, then normalizing to [-0.5, 0.5]. The seed is fixed so the
// texture, and therefore dithered output, is reproducible.
func generateBlueNoise(size int, seed int64) *blueNoiseTexture {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, size*size)
	step := 4 * math.Pi / float64(size-1)
	lo, hi := math.Inf(1), math.Inf(-1)
	for yi := range size {
		y := float64(yi) * step
		for xi := range size {
			x := float64(xi) * step
			v := math.Sin(x)*math.Cos(y)*0.3 +
				math.Sin(x*0.7)*math.Cos(y*0.9)*0.3 +
				math.Sin(x*1.3)*math.Cos(y*1.1)*0.2 +
				math.Sin(x*2.1)*math.Cos(y*1.7)*0.2 +
				(rng.Float64()*2-1)*0.1
			values[yi*size+xi] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	for i, v := range values {
		values[i] = (v-lo)/span - 0.5
	}
	return &blueNoiseTexture{size: size, values: values}
}

var sharedBlueNoise = sync.OnceValue(func() *blueNoiseTexture {
	return generateBlueNoise(256, 42)
})
