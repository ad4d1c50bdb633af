package main

import (
	"context"
	"log"
	"os"

	"dreamcatcher/cmd"
	"dreamcatcher/server"
)

// make version a variable so the build system can inject it
var version = "unknown"

func main() {
	server.Version = version

	if err := cmd.ServerCli().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
