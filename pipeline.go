package medial

import "sync"

// task runs fn(i) for every i in [0, n), split into contiguous chunks, one per worker.
// fn must only write to state owned by index i.
func task(workersCount int, n int, fn func(i int)) {
	if workersCount <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, n))
	}
	wg.Wait()
}
