package simulation

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// PumpTerminalEvents reads screen events until ctx is done or the user quits
// (Esc, Ctrl-C or q), in which case quit is called. Resizes resync the screen
// and are forwarded on interrupts without blocking.
// PollEvent blocks, so whoever cancels ctx should also post an event (see WakeOnDone).
func PumpTerminalEvents(ctx context.Context, screen tcell.Screen, interrupts chan<- struct{}, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			select {
			case interrupts <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
		}
	}
}

// WakeOnDone posts an interrupt event on screen once ctx is done, so that a
// pending PollEvent returns.
func WakeOnDone(ctx context.Context, screen tcell.Screen) {
	<-ctx.Done()
	_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
}
