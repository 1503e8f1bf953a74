package parallel

// bandsPerWorker oversubscribes the band count so slow bands (for example
// rows crossing a high-motion region) rebalance through work stealing.
const bandsPerWorker = 4

// minBandRows keeps bands large enough that scheduling overhead stays
// below the per-row kernel cost.
const minBandRows = 8

// Band is a contiguous half-open range of output rows processed as one task.
type Band struct {
	Y0, Y1 int
}

// SplitRows divides height rows into roughly equal bands for the given
// worker count. Returns nil when height is not positive.
func SplitRows(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	count := workers * bandsPerWorker
	if count > height/minBandRows {
		count = height / minBandRows
	}
	if count < 1 {
		count = 1
	}

	bands := make([]Band, 0, count)
	rows := height / count
	extra := height % count
	y := 0
	for i := 0; i < count; i++ {
		n := rows
		if i < extra {
			n++
		}
		bands = append(bands, Band{Y0: y, Y1: y + n})
		y += n
	}
	return bands
}
