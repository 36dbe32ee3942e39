package main

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var botMoves = []tetris.Command{
	tetris.CommandMoveLeft,
	tetris.CommandMoveRight,
	tetris.CommandRotate,
	tetris.CommandSoftDrop,
}

// GameResult is the outcome of one finished run.
type GameResult struct {
	RunID  uuid.UUID
	Score  int
	Lines  int
	Pieces int
}

// BotSystem plays random moves and restarts the session whenever it ends.
type BotSystem struct {
	rng *rand.Rand

	// MovesPerFrame bounds the random moves queued each frame.
	MovesPerFrame int
	// HardDropChance is the per-frame probability of a hard drop.
	HardDropChance float64

	Games []GameResult
}

func NewBotSystem(seed uint64) *BotSystem {
	return &BotSystem{
		rng:            rand.New(rand.NewPCG(seed, seed+1)),
		MovesPerFrame:  3,
		HardDropChance: 0.1,
	}
}

func (b *BotSystem) Execute(frame *loop.Frame) {
	session := frame.Session
	if session.GameOver() {
		b.Games = append(b.Games, GameResult{
			RunID:  session.RunID(),
			Score:  session.Score(),
			Lines:  session.Lines(),
			Pieces: session.Pieces(),
		})
		frame.Commands.Queue(tetris.CommandRestart)
		return
	}

	if b.MovesPerFrame > 0 {
		for range b.rng.IntN(b.MovesPerFrame + 1) {
			frame.Commands.Queue(botMoves[b.rng.IntN(len(botMoves))])
		}
	}
	if b.rng.Float64() < b.HardDropChance {
		frame.Commands.Queue(tetris.CommandHardDrop)
	}
}
