package various

import "sync"

// NumWorkers is the number of goroutines a map pass is split over.
var NumWorkers = 8

// ForEachRange hands the cell indices [0, cells) to NumWorkers goroutines
// as contiguous ranges of nearly equal size and waits for all of them.
// Passes that read the output of an earlier pass can rely on the return
// of the earlier call as their barrier.
func ForEachRange(cells int, fn func(start, end int)) {
	workers := min(max(NumWorkers, 1), cells)
	if workers == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		start, end := w*cells/workers, (w+1)*cells/workers
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}

// ForEachBatch is ForEachRange with every range cut into batches of at
// most batch cells. Generators report progress once per batch.
func ForEachBatch(cells, batch int, fn func(start, end int)) {
	batch = max(batch, 1)
	ForEachRange(cells, func(start, end int) {
		for s := start; s < end; s += batch {
			fn(s, min(s+batch, end))
		}
	})
}
