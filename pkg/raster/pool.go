package raster

import (
	"context"
	"image"
	"sync"

	"gitlab.com/tinyland/lab/linechart/pkg/scene"
)

// defaultWorkers is the number of concurrent rasterizing goroutines.
const defaultWorkers = 2

// rasterJob is an internal unit of work for RasterizeAll.
type rasterJob struct {
	index  int
	canvas *scene.Canvas
}

// RasterizeAll rasterizes every canvas on a bounded pool of workers and
// returns the images in input order. It stops handing out work once ctx
// is done and returns the first error met.
func RasterizeAll(ctx context.Context, canvases []*scene.Canvas, opts Options, workers int) ([]image.Image, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	workers = min(workers, max(len(canvases), 1))

	images := make([]image.Image, len(canvases))
	jobs := make(chan rasterJob)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				img, err := Rasterize(job.canvas, opts)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				images[job.index] = img
			}
		}()
	}

feed:
	for i, c := range canvases {
		select {
		case jobs <- rasterJob{index: i, canvas: c}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return images, nil
}
