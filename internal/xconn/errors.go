package xconn

import (
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// installErrorHandler silently drops the error kinds a window manager
// typically sees when a window has already vanished (BadWindow,
// BadDrawable, BadAccess, BadMatch). The filter is by error kind only:
// these four are dropped whatever request caused them, not just for
// configure/grab/focus requests. Any other error is logged.
func (c *Conn) installErrorHandler() {
	c.conn.ErrorHandler = func(raw xgb.Error) {
		switch raw.(type) {
		case xproto.WindowError, xproto.DrawableError, xproto.AccessError, xproto.MatchError:
			return
		default:
			log.Printf("xconn: X error: %v", raw)
		}
	}
}
