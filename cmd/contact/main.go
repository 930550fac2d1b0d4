// Package main submits one contact message to a running site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	contactcmd "github.com/likhastudio/site/internal/cmd/contact"
	entrypoint "github.com/likhastudio/site/internal/platform/cmd"
	"github.com/likhastudio/site/internal/platform/config"
)

func main() {
	cfg, err := contactcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceContact))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contactcmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("submit contact: %v", err)
	}
}
