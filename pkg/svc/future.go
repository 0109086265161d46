// Copyright (c) 2026 SvcPack
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svc

import "sync"

// Future is the pending result of an accepted unit of work.
// It completes exactly once - later completions are ignored.
//
// The caller that launched the work observes completion either by blocking
// on Await, or by selecting on Done and then reading Result.
type Future[T any] struct {
	once sync.Once
	done chan struct{}

	out T
	err error
}

// NewFuture returns a pending Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete resolves the future successfully.
func (a *Future[T]) Complete(out T) {
	a.once.Do(func() {
		a.out = out
		close(a.done)
	})
}

// Fail resolves the future with an error.
// If err is nil, the failure cause is recorded as UnknownFailureCause.
func (a *Future[T]) Fail(err error) {
	a.once.Do(func() {
		if err == nil {
			err = UnknownFailureCause{}
		}
		a.err = err
		close(a.done)
	})
}

// Done is closed once the future has resolved.
func (a *Future[T]) Done() <-chan struct{} {
	return a.done
}

// Result returns the outcome. It must only be read after Done is closed.
func (a *Future[T]) Result() (T, error) {
	return a.out, a.err
}

// Await blocks until the future resolves and returns the outcome.
func (a *Future[T]) Await() (T, error) {
	<-a.done
	return a.out, a.err
}

// GoFuture runs fn on its own goroutine and resolves the returned future
// with fn's result. A panic in fn fails the future with a PanicError.
func GoFuture[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				f.Fail(&PanicError{Panic: p})
			}
		}()
		out, err := fn()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(out)
	}()
	return f
}

// CompletedFuture returns a future that has already resolved successfully.
func CompletedFuture[T any](out T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(out)
	return f
}

// FailedFuture returns a future that has already resolved with err.
func FailedFuture[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}
