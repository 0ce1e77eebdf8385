// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package concurrent provides a bounded worker pool for running independent
// tasks, such as the per-identifier recurrence lookups issued against the
// calendar API.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs a set of functions with a bounded number of goroutines.
type WorkerPool struct {
	workerCount int
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{
		workerCount: workerCount,
	}
}

// Run executes all functions and returns the first error encountered,
// cancelling the remaining work.
func (wp *WorkerPool) Run(ctx context.Context, functions ...func() error) error {
	if len(functions) == 0 {
		return nil
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(wp.workerCount)

	for _, fn := range functions {
		g.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			return fn()
		})
	}

	return g.Wait()
}

// RunAll executes all functions to completion regardless of individual
// failures. One function's error never cancels the others; the non-nil
// errors are collected and returned.
func (wp *WorkerPool) RunAll(ctx context.Context, functions ...func() error) []error {
	if len(functions) == 0 {
		return nil
	}

	errorChan := make(chan error, len(functions))

	g := new(errgroup.Group)
	g.SetLimit(wp.workerCount)

	for _, fn := range functions {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				errorChan <- ctx.Err()
				return nil
			default:
			}

			if err := fn(); err != nil {
				errorChan <- err
			}
			return nil
		})
	}

	// Every submitted function returns nil to the errgroup, so Wait only
	// blocks until all of them finish.
	_ = g.Wait()
	close(errorChan)

	var errs []error
	for err := range errorChan {
		errs = append(errs, err)
	}

	return errs
}
