// LocalGames Core
// Copyright (c) 2026 The LocalGames Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of LocalGames Core.
//
// LocalGames Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LocalGames Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LocalGames Core.  If not, see <http://www.gnu.org/licenses/>.

package launchers

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RegisterOutcome is the per-adapter result of a Register call.
type RegisterOutcome struct {
	Launcher   Launcher
	Err        error
	ID         Identity
	Validation ValidationResult
	Success    bool
}

// RegisterResult aggregates the outcomes of one Register call.
// Success is the AND of every per-adapter outcome.
type RegisterResult struct {
	Outcomes []RegisterOutcome
	Success  bool
}

// Registry owns a set of validated, initialized adapters keyed by identity
// and is the sole entry point external callers use. Adapters are inserted
// only after full validation and a successful Init; there is no unregister
// operation.
type Registry struct {
	byID  map[Identity]Launcher
	mu    sync.RWMutex
	order []Identity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[Identity]Launcher)}
}

// Register validates all supplied adapters concurrently, initializes the
// fully valid ones concurrently, and inserts the survivors. Registration is
// fan-out and fail-independent: one adapter's validation or init failure
// never aborts processing of the others, and is converted to a false
// outcome for that adapter only.
//
// Identity collisions overwrite the previous entry (last writer wins) and
// are logged; callers must avoid registering two adapters under the same
// identity if that is unintended.
func (r *Registry) Register(ctx context.Context, adapters ...Launcher) RegisterResult {
	outcomes := make([]RegisterOutcome, len(adapters))

	var wg sync.WaitGroup
	for i, l := range adapters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := Validate(ctx, l)
			outcomes[i] = RegisterOutcome{
				ID:         l.Settings().ID,
				Launcher:   l,
				Validation: v,
				Success:    v.Full,
			}
			if !v.Full {
				log.Warn().
					Str("launcher", string(l.Settings().ID)).
					Bool("os", v.OSMatch).
					Bool("found", v.LauncherFound).
					Msg("launcher is not valid")
			}
		}()
	}
	wg.Wait()

	for i := range outcomes {
		if !outcomes[i].Success {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := &outcomes[i]
			if err := o.Launcher.Init(ctx); err != nil {
				log.Error().Err(err).
					Str("launcher", string(o.ID)).
					Msg("launcher init failed")
				o.Success = false
				o.Err = err
			}
		}()
	}
	wg.Wait()

	r.mu.Lock()
	for i := range outcomes {
		o := outcomes[i]
		if !o.Success {
			continue
		}
		log.Debug().Str("launcher", string(o.ID)).Msg("registering launcher")
		if _, exists := r.byID[o.ID]; exists {
			log.Warn().
				Str("launcher", string(o.ID)).
				Msg("identity collision, replacing previous launcher")
		} else {
			r.order = append(r.order, o.ID)
		}
		r.byID[o.ID] = o.Launcher
	}
	r.mu.Unlock()

	success := true
	for i := range outcomes {
		if !outcomes[i].Success {
			success = false
			break
		}
	}
	return RegisterResult{Outcomes: outcomes, Success: success}
}

// Get returns the adapter registered under id.
func (r *Registry) Get(id Identity) (Launcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byID[id]
	return l, ok
}

// Identities returns the registered identities in insertion order.
func (r *Registry) Identities() []Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Identity, len(r.order))
	copy(out, r.order)
	return out
}

// Wrap binds a game to the registered adapter named by its Launcher field.
// It reports false when that adapter is not registered.
func (r *Registry) Wrap(g Game) (*GameHandle, bool) {
	l, ok := r.Get(g.Launcher)
	if !ok {
		return nil, false
	}
	return NewHandle(g, l), true
}

// ListAllGames lists every registered adapter's games concurrently and
// concatenates the results in registration order. Listing failures are
// unusual and surfaced: the first adapter error aborts the aggregate call.
// Callers that want per-adapter degradation iterate Identities and call
// each adapter's ListGames directly.
func (r *Registry) ListAllGames(ctx context.Context) ([]*GameHandle, error) {
	r.mu.RLock()
	order := make([]Identity, len(r.order))
	copy(order, r.order)
	adapters := make([]Launcher, len(order))
	for i, id := range order {
		adapters[i] = r.byID[id]
	}
	r.mu.RUnlock()

	results := make([][]*GameHandle, len(adapters))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range adapters {
		g.Go(func() error {
			games, err := l.ListGames(gctx)
			if err != nil {
				return err
			}
			results[i] = games
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*GameHandle
	for _, games := range results {
		out = append(out, games...)
	}
	return out, nil
}
