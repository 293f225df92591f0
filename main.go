package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/rootwm/xwm/internal/wm"
	"github.com/rootwm/xwm/internal/xconn"
)

func main() {
	opt := parseCLIOpts()
	applyCLIOpts(opt)

	conn, err := xconn.New("")
	if err != nil {
		log.Fatalf("xwm: %v", err)
	}

	cfg := loadRcFile(defaultEngineConfig())
	engine := wm.NewEngine(cfg, conn)

	engine.Setup(conn.Root())
	engine.SetBindings(keyBindings(), buttonBindings(), edgeActions(engine))
	engine.Scan(conn.QueryTree())

	go watchSignals(engine)

	engine.Run()

	conn.Sync()
	conn.Close()

	if engine.WantsRestart() {
		restartInPlace()
	}
}

// watchSignals implements signal surface: SIGTERM/SIGINT
// quit cleanly, SIGHUP requests a restart-in-place, and SIGCHLD reaps
// spawned children non-blockingly.
func watchSignals(e *wm.Engine) {
	sigs := make(chan os.Signal, 8)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, syscall.SIGCHLD)
	for sig := range sigs {
		switch sig {
		case syscall.SIGTERM, syscall.SIGINT:
			e.Quit()
		case syscall.SIGHUP:
			e.QuitRestart()
		case syscall.SIGCHLD:
			wm.ReapChildren()
		}
	}
}

// restartInPlace re-executes the running binary in place. The X display
// and all deferred cleanup must already be closed before execve replaces
// the process image, so this only runs after Run returns and conn.Close
// has completed.
func restartInPlace() {
	argv0, err := os.Executable()
	if err != nil {
		log.Printf("xwm: restart: couldn't resolve executable path: %v", err)
		return
	}
	if err := unix.Exec(argv0, os.Args, os.Environ()); err != nil {
		log.Printf("xwm: restart: exec failed: %v", err)
	}
}
