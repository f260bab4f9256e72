package analytics

// leastSquares ajuste une droite y = slope*x + intercept par moindres
// carrés ordinaires. Avec moins de deux points, ou des x tous identiques,
// la droite est horizontale à la moyenne des y.
func leastSquares(xs, ys []float64) (slope, intercept float64) {
	n := len(xs)
	if n == 0 || len(ys) != n {
		return 0, 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var ssXY, ssXX float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		ssXY += dx * dy
		ssXX += dx * dx
	}

	if ssXX == 0 {
		return 0, meanY
	}

	slope = ssXY / ssXX
	intercept = meanY - slope*meanX
	return slope, intercept
}
