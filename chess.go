package main

import (
	"time"
)

type player int

const (
	white player = iota
	black
)

func (p player) String() string {
	if p == black {
		return "black"
	}
	return "white"
}

func (p player) other() player {
	return 1 - p
}

// gameRules is a Fischer time control: base time per player and seconds
// added after every move
type gameRules struct {
	Base      time.Duration
	Increment time.Duration
}

type gameState int

const (
	gameReady gameState = iota
	gameRunning
	gamePaused
	gameFlagged
)

func (s gameState) String() string {
	switch s {
	case gameRunning:
		return "running"
	case gamePaused:
		return "paused"
	case gameFlagged:
		return "flagged"
	default:
		return "ready"
	}
}

type chessGame struct {
	rules     gameRules
	remaining [2]time.Duration
	turn      player
	moves     int
	state     gameState
	last      time.Time
}

func newChessGame(rules gameRules) *chessGame {
	g := &chessGame{rules: rules}
	g.reset()
	return g
}

func (g *chessGame) reset() {
	g.remaining = [2]time.Duration{g.rules.Base, g.rules.Base}
	g.turn = white
	g.moves = 0
	g.state = gameReady
}

// tick charges the time since the last tick to the player on move
func (g *chessGame) tick(now time.Time) {
	if g.state != gameRunning {
		return
	}
	g.remaining[g.turn] -= now.Sub(g.last)
	g.last = now
	if g.remaining[g.turn] <= 0 {
		g.remaining[g.turn] = 0
		g.state = gameFlagged
	}
}

// press is the main button. The first press starts white's clock, after
// that it ends the running player's move.
func (g *chessGame) press(now time.Time) {
	switch g.state {
	case gameReady:
		g.state = gameRunning
		g.last = now
	case gameRunning:
		g.tick(now)
		if g.state == gameFlagged {
			return
		}
		g.remaining[g.turn] += g.rules.Increment
		if g.turn == black {
			g.moves++
		}
		g.turn = g.turn.other()
	}
}

func (g *chessGame) togglePause(now time.Time) {
	switch g.state {
	case gameRunning:
		g.tick(now)
		if g.state == gameRunning {
			g.state = gamePaused
		}
	case gamePaused:
		g.state = gameRunning
		g.last = now
	}
}

func (g *chessGame) remainingFor(p player) time.Duration {
	return g.remaining[p]
}

// moveNumber is the move being played, counting from 1
func (g *chessGame) moveNumber() int {
	return g.moves + 1
}
