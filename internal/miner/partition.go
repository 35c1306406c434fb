package miner

type span struct {
	start uint64
	end   uint64
}

// partition splits [start, end) into at most chunks contiguous spans of width
// ceil((end-start)/chunks). Empty spans are skipped.
func partition(start, end, chunks uint64) []span {
	if start >= end {
		return nil
	}
	if chunks == 0 {
		chunks = 1
	}

	total := end - start
	width := total / chunks
	if total%chunks != 0 {
		width++
	}

	spans := make([]span, 0, min(chunks, total))
	for offset := uint64(0); offset < total; offset += width {
		s := span{start: start + offset, end: end}
		if total-offset > width {
			s.end = s.start + width
		}
		spans = append(spans, s)
		if total-offset <= width {
			break
		}
	}

	return spans
}
