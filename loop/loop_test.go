package loop_test

import (
	"io"
	"log"
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func newTestDriver(render tetris.RenderSink, kinds ...tetris.Kind) *tetris.Driver {
	session := tetris.NewSession(tetris.DefaultConfig(),
		tetris.WithSource(tetris.NewSequenceSource(kinds...)),
		tetris.WithLogger(log.New(io.Discard, "", 0)),
	)
	return tetris.NewDriver(session, render)
}

func currentCol(t *testing.T, session *tetris.Session) int {
	t.Helper()
	p, ok := session.Current()
	if !ok {
		t.Fatal("expected an active piece")
	}
	return p.Col
}
