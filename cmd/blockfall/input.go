package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/loop/debugui"
	"github.com/plus3/blockfall/tetris"
)

// Binding maps a key to a command. Repeating bindings fire again while the
// key is held.
type Binding struct {
	Key     ebiten.Key
	Command tetris.Command
	Repeat  bool
}

func DefaultBindings() []Binding {
	return []Binding{
		{Key: ebiten.KeyLeft, Command: tetris.CommandMoveLeft, Repeat: true},
		{Key: ebiten.KeyA, Command: tetris.CommandMoveLeft, Repeat: true},
		{Key: ebiten.KeyRight, Command: tetris.CommandMoveRight, Repeat: true},
		{Key: ebiten.KeyD, Command: tetris.CommandMoveRight, Repeat: true},
		{Key: ebiten.KeyDown, Command: tetris.CommandSoftDrop, Repeat: true},
		{Key: ebiten.KeyS, Command: tetris.CommandSoftDrop, Repeat: true},
		{Key: ebiten.KeyUp, Command: tetris.CommandRotate},
		{Key: ebiten.KeyW, Command: tetris.CommandRotate},
		{Key: ebiten.KeySpace, Command: tetris.CommandHardDrop},
		{Key: ebiten.KeyR, Command: tetris.CommandRestart},
	}
}

// InputSystem queues commands for pressed keys.
type InputSystem struct {
	bindings *intmap.Map[ebiten.Key, Binding]
	keys     []ebiten.Key
	capture  *debugui.ImguiInputState

	// RepeatDelay and RepeatRate are in ticks.
	RepeatDelay int
	RepeatRate  int
}

func NewInputSystem(bindings []Binding) *InputSystem {
	s := &InputSystem{
		bindings:    intmap.New[ebiten.Key, Binding](len(bindings)),
		RepeatDelay: 10,
		RepeatRate:  3,
	}
	for _, b := range bindings {
		if !s.bindings.Has(b.Key) {
			s.keys = append(s.keys, b.Key)
		}
		s.bindings.Put(b.Key, b)
	}
	return s
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if s.capture != nil && s.capture.WantCaptureKeyboard {
		return
	}

	for _, key := range s.keys {
		binding, ok := s.bindings.Get(key)
		if !ok {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			frame.Commands.Queue(binding.Command)
			continue
		}
		if binding.Repeat && repeats(inpututil.KeyPressDuration(key), s.RepeatDelay, s.RepeatRate) {
			frame.Commands.Queue(binding.Command)
		}
	}
}

// repeats reports whether a key held for ticks should fire again.
func repeats(ticks, delay, rate int) bool {
	if rate <= 0 || ticks <= delay {
		return false
	}
	return (ticks-delay)%rate == 0
}
