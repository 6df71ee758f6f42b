// Package filter implements the per-pixel colour stage and the box blur stage
// of the render pipeline.
//
// Both stages work on tightly packed, non-premultiplied RGBA8 rows
// (stride = width*4) and split work into row bands through a
// parallel.WorkerPool. Results are identical for any worker count.
package filter
