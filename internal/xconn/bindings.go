package xconn

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rootwm/xwm/internal/wm"
)

const keysymNumLock = 0xff7f

// ResolveKeycodes translates an X keysym to every keycode that currently
// produces it, by scanning the server's keyboard mapping — the same
// approach dwm's grabkeys() uses via XGetKeyboardMapping/XKeysymToKeycode,
// generalized to return every match instead of the first.
func (c *Conn) ResolveKeycodes(keysym uint32) []int {
	setup := xproto.Setup(c.conn)
	first := setup.MinKeycode
	count := int(setup.MaxKeycode-setup.MinKeycode) + 1

	reply, err := xproto.GetKeyboardMapping(c.conn, first, byte(count)).Reply()
	if err != nil || reply == nil || reply.KeysymsPerKeycode == 0 {
		return nil
	}

	var out []int
	perCode := int(reply.KeysymsPerKeycode)
	for i := 0; i < count; i++ {
		for j := 0; j < perCode; j++ {
			idx := i*perCode + j
			if idx >= len(reply.Keysyms) {
				continue
			}
			if uint32(reply.Keysyms[idx]) == keysym {
				out = append(out, int(first)+i)
				break
			}
		}
	}
	return out
}

// updateNumlockMask finds which modifier bit NumLock is currently bound
// to, mirroring dwm's updatenumlockmask(): query the modifier mapping,
// then check each modifier's keycodes against NumLock's keycodes.
func (c *Conn) updateNumlockMask() {
	c.numlockMask = 0
	numlockCodes := c.ResolveKeycodes(keysymNumLock)
	if len(numlockCodes) == 0 {
		return
	}
	reply, err := xproto.GetModifierMapping(c.conn).Reply()
	if err != nil || reply == nil {
		return
	}
	perMod := int(reply.KeycodesPerModifier)
	for mod := 0; mod < 8; mod++ {
		for i := 0; i < perMod; i++ {
			kc := reply.Keycodes[mod*perMod+i]
			for _, nc := range numlockCodes {
				if int(kc) == nc {
					c.numlockMask = 1 << uint(mod)
				}
			}
		}
	}
}

// CleanMask strips Lock and the detected NumLock bit, plus the bits X
// never reports back (button masks), per dwm's CLEANMASK macro.
func (c *Conn) CleanMask(mods uint32) uint32 {
	clean := mods &^ (uint32(c.numlockMask) | xproto.ModMaskLock)
	return clean & (xproto.ModMaskShift | xproto.ModMaskControl |
		xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5)
}

// lockVariants lists the extra modifier combinations a grab must repeat
// under so it still fires regardless of NumLock/CapsLock state, matching
// dwm's grabkeys() loop over {0, LockMask, numlockmask,
// numlockmask|LockMask}.
func (c *Conn) lockVariants() []uint16 {
	return []uint16{0, xproto.ModMaskLock, uint16(c.numlockMask), uint16(c.numlockMask) | xproto.ModMaskLock}
}

func (c *Conn) GrabKey(win wm.WinID, mod uint32, keycode int) {
	for _, extra := range c.lockVariants() {
		xproto.GrabKey(c.conn, true, win, uint16(mod)|extra, xproto.Keycode(keycode),
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

func (c *Conn) GrabButton(win wm.WinID, mod uint32, button int) {
	mask := uint16(xproto.EventMaskButtonPress)
	for _, extra := range c.lockVariants() {
		xproto.GrabButton(c.conn, false, win, mask,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0, xproto.Button(button), uint16(mod)|extra)
	}
}

func (c *Conn) UngrabAllBindings(win wm.WinID) {
	xproto.UngrabKey(c.conn, xproto.GrabAny, win, xproto.ModMaskAny)
	xproto.UngrabButton(c.conn, xproto.ButtonIndexAny, win, xproto.ModMaskAny)
}
