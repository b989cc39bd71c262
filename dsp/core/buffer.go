package core

// Deinterleave splits interleaved stereo frames into left and right.
// It returns the number of frames written, bounded by the shortest input.
func Deinterleave(left, right, interleaved []float64) int {
	n := len(interleaved) / 2
	if len(left) < n {
		n = len(left)
	}
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		left[i] = interleaved[2*i]
		right[i] = interleaved[2*i+1]
	}
	return n
}

// Interleave merges left and right into interleaved stereo frames.
// It returns the number of frames written, bounded by the shortest input.
func Interleave(interleaved, left, right []float64) int {
	n := len(interleaved) / 2
	if len(left) < n {
		n = len(left)
	}
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		interleaved[2*i] = left[i]
		interleaved[2*i+1] = right[i]
	}
	return n
}
