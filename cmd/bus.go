package cmd

import (
	"context"

	"github.com/topongo/playing/internal/errcode"
	"github.com/topongo/playing/internal/mpris"
	"github.com/topongo/playing/internal/player"
)

// connectAndResolve opens the session bus, takes a snapshot of the
// running players and resolves it against the fixed ranking. The
// returned cleanup closes the bus connection and must be called once
// the matches are no longer used.
func connectAndResolve(ctx context.Context) ([]player.Match, func(), error) {
	conn, err := mpris.Connect()
	if err != nil {
		return nil, nil, errcode.New(errcode.BusInit, err)
	}

	running, err := conn.ListPlayers(ctx)
	if err != nil {
		_ = conn.Close()
		return nil, nil, errcode.New(errcode.Bus, err)
	}

	snapshot := make([]player.RunningPlayer, len(running))
	for i, p := range running {
		snapshot[i] = p
	}

	matches := player.Resolve(player.Ranking(), snapshot)
	cleanup := func() { _ = conn.Close() }
	return matches, cleanup, nil
}
