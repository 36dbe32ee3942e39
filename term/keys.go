package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var keyCommands = map[tcell.Key]tetris.Command{
	tcell.KeyLeft:  tetris.CommandMoveLeft,
	tcell.KeyRight: tetris.CommandMoveRight,
	tcell.KeyDown:  tetris.CommandSoftDrop,
	tcell.KeyUp:    tetris.CommandRotate,
}

var runeCommands = map[rune]tetris.Command{
	'h': tetris.CommandMoveLeft,
	'l': tetris.CommandMoveRight,
	'j': tetris.CommandSoftDrop,
	'k': tetris.CommandRotate,
	' ': tetris.CommandHardDrop,
	'r': tetris.CommandRestart,
	'R': tetris.CommandRestart,
}

// Translate maps a key event to a command.
func Translate(ev *tcell.EventKey) (tetris.Command, bool) {
	return translate(ev.Key(), ev.Rune())
}

func translate(key tcell.Key, ch rune) (tetris.Command, bool) {
	if key == tcell.KeyRune {
		cmd, ok := runeCommands[ch]
		return cmd, ok
	}
	cmd, ok := keyCommands[key]
	return cmd, ok
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	return isQuit(ev.Key(), ev.Rune())
}

func isQuit(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}
