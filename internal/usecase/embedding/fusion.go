package embedding

import (
	"math"

	"github.com/threadress/stylerank/internal/domain"
)

// Fuse combines the three modality vectors into one domain.FusedDim
// vector. Each input is padded/truncated to the fused dimension and
// L2-normalized, then blended per dimension: a modality's local weight
// is its share of the summed absolute magnitudes at that dimension
// times its normalized global weight. A flat weighted sum covers
// dimensions where all magnitudes are zero. The result is
// L2-normalized, except the all-zero case which stays zero.
//
// The dynamic per-dimension blend keeps sparse-but-strong modality
// signals alive: a flat average would wash out an image vector that is
// confident in only a handful of dimensions.
func Fuse(text, image, vibe domain.Vector, w domain.Weights) domain.Vector {
	if w.Sum() <= 0 {
		w = domain.DefaultWeights()
	}
	total := w.Sum()
	wText := w.Text / total
	wImage := w.Image / total
	wVibe := w.Vibe / total

	t := text.Fit(domain.FusedDim).Normalized()
	im := image.Fit(domain.FusedDim).Normalized()
	v := vibe.Fit(domain.FusedDim).Normalized()

	fused := make(domain.Vector, domain.FusedDim)
	for i := 0; i < domain.FusedDim; i++ {
		mt := math.Abs(float64(t[i]))
		mi := math.Abs(float64(im[i]))
		mv := math.Abs(float64(v[i]))
		magSum := mt + mi + mv

		if magSum == 0 {
			fused[i] = float32(wText*float64(t[i]) + wImage*float64(im[i]) + wVibe*float64(v[i]))
			continue
		}

		localText := (mt / magSum) * wText
		localImage := (mi / magSum) * wImage
		localVibe := (mv / magSum) * wVibe
		fused[i] = float32(localText*float64(t[i]) + localImage*float64(im[i]) + localVibe*float64(v[i]))
	}

	return fused.Normalized()
}
