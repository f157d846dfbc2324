package harness

// Counts from min to max, multiplying by mult each step. The max is always
// included even when it isn't a power of mult away from min, so Range(8,
// 8<<15, 8) gives 8, 64, 512, 4096, 32768, 262144. A min of zero is measured
// once and then the sweep carries on from 1.
func Range(min, max, mult int) []int {
	var counts []int
	if min > max || mult < 2 {
		return counts
	}
	count := min
	if count == 0 {
		counts = append(counts, 0)
		count = 1
	}
	for count < max {
		counts = append(counts, count)
		if count > max/mult {
			break
		}
		count *= mult
	}
	if len(counts) == 0 || counts[len(counts)-1] != max {
		counts = append(counts, max)
	}
	return counts
}
