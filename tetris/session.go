package tetris

import (
	"log"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=State -trimprefix=State

// State is the phase of the session state machine. Between calls a session
// is always either StateActive or StateGameOver; the other phases only exist
// while a lock is being processed.
type State int

const (
	StateSpawning State = iota
	StateActive
	StateLocking
	StateCleared
	StateGameOver
)

// kickOffsets is the column probe order used when a rotation does not fit
// in place.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// StatSink receives score and line totals whenever they change.
type StatSink interface {
	Stats(score, lines int)
}

// StatSinkFunc adapts a plain function to StatSink.
type StatSinkFunc func(score, lines int)

func (f StatSinkFunc) Stats(score, lines int) { f(score, lines) }

// Option configures a Session.
type Option func(*Session)

// WithSource sets the generator used for new pieces.
func WithSource(source PieceSource) Option {
	return func(s *Session) {
		s.source = source
	}
}

// WithStatSink registers a receiver for score and line updates.
func WithStatSink(sink StatSink) Option {
	return func(s *Session) {
		s.stats = sink
	}
}

// WithLogger replaces the standard logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session owns one game: the board, the active and next pieces, and the
// counters. It is not safe for concurrent use; callers serialize every
// operation through a single goroutine.
type Session struct {
	cfg    Config
	source PieceSource
	stats  StatSink
	logger *log.Logger

	board     *Board
	current   *Piece
	next      *Piece
	state     State
	gameOver  bool
	score     int
	lines     int
	pieces    int
	lastClear int
	dropTimer time.Duration
	runID     uuid.UUID
}

// NewSession creates a session and starts its first game.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewRandomSource(uint64(time.Now().UnixNano()))
	}

	s.Restart()
	return s
}

// SpawnPiece returns a fresh piece at the spawn position. KindNone draws the
// kind from source; a source that yields an invalid kind gets KindI.
func SpawnPiece(cfg Config, source PieceSource, kind Kind) Piece {
	if !kind.Valid() {
		kind = source.Next()
	}
	if !kind.Valid() {
		kind = KindI
	}
	piece := NewPiece(kind)
	piece.Row = SpawnRow
	piece.Col = cfg.SpawnCol()
	return piece
}

// Restart discards the current game and starts a new one. It is valid in
// any state, including game over.
func (s *Session) Restart() {
	s.board = NewBoard(s.cfg.Cols, s.cfg.Rows)
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.lastClear = 0
	s.dropTimer = 0
	s.gameOver = false
	s.current = nil
	s.runID = uuid.New()

	next := SpawnPiece(s.cfg, s.source, KindNone)
	s.next = &next

	s.logger.Printf("[Session] run %s started on %dx%d board", s.runID, s.cfg.Cols, s.cfg.Rows)
	s.emitStats()
	s.spawn()
}

func (s *Session) spawn() {
	s.state = StateSpawning

	var current Piece
	if s.next != nil {
		current = *s.next
	} else {
		current = SpawnPiece(s.cfg, s.source, KindNone)
	}
	current.Row = SpawnRow
	current.Col = s.cfg.SpawnCol()
	s.current = &current

	next := SpawnPiece(s.cfg, s.source, KindNone)
	s.next = &next

	if !IsValidPosition(s.current, s.board, 0, 0) {
		s.gameOver = true
		s.state = StateGameOver
		s.logger.Printf("[Session] run %s game over: score=%d lines=%d pieces=%d", s.runID, s.score, s.lines, s.pieces)
		return
	}

	s.state = StateActive
}

func (s *Session) playable() bool {
	return !s.gameOver && s.current != nil
}

// Move shifts the active piece one column left (dir -1) or right (dir +1).
// It reports whether the piece moved; blocked moves and other dir values
// are no-ops.
func (s *Session) Move(dir int) bool {
	if !s.playable() || (dir != -1 && dir != 1) {
		return false
	}
	if !IsValidPosition(s.current, s.board, 0, dir) {
		return false
	}
	s.current.Col += dir
	return true
}

// Rotate turns the active piece clockwise, trying the column offsets in
// kickOffsets until one fits. If none fits the piece is left unchanged.
func (s *Session) Rotate() bool {
	if !s.playable() {
		return false
	}

	original := s.current.Shape
	s.current.Shape = RotateClockwise(original)

	for _, offset := range kickOffsets {
		if IsValidPosition(s.current, s.board, 0, offset) {
			s.current.Col += offset
			return true
		}
	}

	s.current.Shape = original
	return false
}

// SoftDrop moves the active piece down one row, or locks it when it cannot
// fall any further.
func (s *Session) SoftDrop() bool {
	if !s.playable() {
		return false
	}
	if IsValidPosition(s.current, s.board, 1, 0) {
		s.current.Row++
		return true
	}
	s.lock()
	return true
}

// HardDrop drops the active piece as far as it goes and locks it.
func (s *Session) HardDrop() bool {
	if !s.playable() {
		return false
	}
	for IsValidPosition(s.current, s.board, 1, 0) {
		s.current.Row++
	}
	s.lock()
	return true
}

// Tick advances the gravity timer by delta. Once the timer exceeds the drop
// interval a single soft drop runs and the timer restarts from zero; time
// beyond the interval is not carried over. It reports whether a drop ran.
func (s *Session) Tick(delta time.Duration) bool {
	if s.gameOver {
		return false
	}
	s.dropTimer += delta
	if s.dropTimer <= s.cfg.DropInterval {
		return false
	}
	s.dropTimer = 0
	return s.SoftDrop()
}

func (s *Session) lock() {
	s.state = StateLocking

	// Cells still above the board have nowhere to go and are dropped.
	cells := s.current.Cells()
	visible := cells[:0]
	for _, cell := range cells {
		if cell.Row >= 0 {
			visible = append(visible, cell)
		}
	}
	s.board.Place(visible, s.current.Kind)
	s.pieces++

	s.state = StateCleared
	n := s.board.ClearFullRows()
	s.lastClear = n
	if n > 0 {
		s.lines += n
		s.score += LineScore(n)
		s.emitStats()
	}

	s.spawn()
}

func (s *Session) emitStats() {
	if s.stats != nil {
		s.stats.Stats(s.score, s.lines)
	}
}

// GhostRow returns the row the active piece would land on if hard dropped.
func (s *Session) GhostRow() int {
	if s.current == nil {
		return SpawnRow
	}
	drop := 0
	for IsValidPosition(s.current, s.board, drop+1, 0) {
		drop++
	}
	return s.current.Row + drop
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board { return s.board }

// Current returns a copy of the active piece.
func (s *Session) Current() (Piece, bool) {
	if s.current == nil {
		return Piece{}, false
	}
	return s.current.Clone(), true
}

// Next returns a copy of the queued piece.
func (s *Session) Next() (Piece, bool) {
	if s.next == nil {
		return Piece{}, false
	}
	return s.next.Clone(), true
}

// State returns the state machine phase.
func (s *Session) State() State { return s.state }

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Score returns the points earned in this run.
func (s *Session) Score() int { return s.score }

// Lines returns the number of rows cleared in this run.
func (s *Session) Lines() int { return s.lines }

// Pieces returns the number of pieces locked in this run.
func (s *Session) Pieces() int { return s.pieces }

// LastClear returns how many rows the most recent lock cleared.
func (s *Session) LastClear() int { return s.lastClear }

// DropTimer returns the time accumulated toward the next gravity drop.
func (s *Session) DropTimer() time.Duration { return s.dropTimer }

// RunID identifies the current run; it changes on every restart.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	RunID     uuid.UUID
	Cols      int
	Rows      int
	Board     [][]Kind
	Current   *Piece
	Next      *Piece
	GhostRow  int
	State     State
	GameOver  bool
	Score     int
	Lines     int
	Pieces    int
	LastClear int
	DropTimer time.Duration
}

// Snapshot copies the session state. Mutating the result does not affect
// the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:     s.runID,
		Cols:      s.board.Cols(),
		Rows:      s.board.Rows(),
		Board:     s.board.Cells(),
		GhostRow:  s.GhostRow(),
		State:     s.state,
		GameOver:  s.gameOver,
		Score:     s.score,
		Lines:     s.lines,
		Pieces:    s.pieces,
		LastClear: s.lastClear,
		DropTimer: s.dropTimer,
	}
	if current, ok := s.Current(); ok {
		snap.Current = &current
	}
	if next, ok := s.Next(); ok {
		snap.Next = &next
	}
	return snap
}
