// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter implements fixed-window request counting per client key.
//
// Two backends are available: Memory keeps windows in a mutex-guarded map and
// needs a Sweeper to drop expired entries; Redis shares the counters between
// instances using INCR and EXPIRE. Callers are expected to let a request
// through when Allow returns an error.
package limiter

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultLimit  = 100
	DefaultWindow = time.Minute
)

var ErrInvalidSettings = errors.New("limiter: limit and window must be positive")

// Limiter decides whether one more request from key fits into the current
// window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Settings configures a limiter. Zero values fall back to the defaults.
type Settings struct {
	Limit  int
	Window time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.Limit == 0 {
		s.Limit = DefaultLimit
	}
	if s.Window == 0 {
		s.Window = DefaultWindow
	}
	return s
}

func (s Settings) validate() error {
	if s.Limit < 0 || s.Window < 0 {
		return ErrInvalidSettings
	}
	return nil
}
