package main

import (
	"flag"
	"os"

	"github.com/zyr17/artifact-scheduler/internal/app"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	os.Exit(app.RunWithOptions(app.Options{Verbose: *verbose}, flag.Args()))
}
