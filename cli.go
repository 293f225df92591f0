package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	wmName    = "xwm"
	wmVersion = "0.1.0"
)

// CLIOpts is a small flag set parsed once at startup and applied before
// anything else runs. -v is the only flag; any positional argument is a
// usage error.
type CLIOpts struct {
	version bool
}

func parseCLIOpts() CLIOpts {
	var opt CLIOpts
	flag.BoolVar(&opt.version, "v", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v]\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	return opt
}

// applyCLIOpts prints the name and version to stderr and exits when -v
// was given; otherwise it's a no-op and startup continues normally.
func applyCLIOpts(opt CLIOpts) {
	if opt.version {
		fmt.Fprintf(os.Stderr, "%s-%s\n", wmName, wmVersion)
		os.Exit(0)
	}
}
