package dataset

import (
	"bufio"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// LoadDigits reads n grayscale digit images named prefix0000.png through
// prefix<n-1>.png (zero-padded to four digits) from dir. Pixels are inverted
// (ink is bright, paper is dark) and scaled to [0,1]; each image becomes one
// feature vector of width*height values in row-major order.
func LoadDigits(dir, prefix string, n int) ([][]float64, error) {
	features := make([][]float64, n)
	for m := 0; m < n; m++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%04d.png", prefix, m))
		vec, err := loadDigit(path)
		if err != nil {
			return nil, fmt.Errorf("loading digit %d: %w", m, err)
		}
		features[m] = vec
	}
	return features, nil
}

func loadDigit(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	vec := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			vec = append(vec, float64(255-g.Y)/255.0)
		}
	}
	return vec, nil
}

// LoadLabels reads whitespace-separated integer class labels from path.
func LoadLabels(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []int
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return nil, fmt.Errorf("parsing label %q in %s: %w", sc.Text(), path, err)
		}
		labels = append(labels, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

// LoadDigitSamples pairs the images under dir with the labels in labelPath.
func LoadDigitSamples(dir, prefix, labelPath string, n int) ([]Sample, error) {
	features, err := LoadDigits(dir, prefix, n)
	if err != nil {
		return nil, err
	}
	labels, err := LoadLabels(labelPath)
	if err != nil {
		return nil, err
	}
	if len(labels) < n {
		return nil, fmt.Errorf("ground truth %s has %d labels, need %d", labelPath, len(labels), n)
	}
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{Features: features[i], Label: labels[i]}
	}
	return samples, nil
}
