package console

import "strings"

// sparkline block characters from lowest to highest
var sparkBlocks = []rune{
	'▁', // ▁
	'▂', // ▂
	'▃', // ▃
	'▄', // ▄
	'▅', // ▅
	'▆', // ▆
	'▇', // ▇
	'█', // █
}

// renderSparkline draws one block character per bucket, scaled between
// the smallest and largest count.
func renderSparkline(counts []uint16) string {
	if len(counts) == 0 {
		return ""
	}

	minCount, maxCount := counts[0], counts[0]
	for _, c := range counts {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	var b strings.Builder
	rng := int(maxCount) - int(minCount)
	for _, c := range counts {
		idx := 0
		if rng > 0 {
			idx = (int(c) - int(minCount)) * (len(sparkBlocks) - 1) / rng
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return b.String()
}
