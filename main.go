package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"PolyBoard/internal/config"
	"PolyBoard/internal/editor"
	boardnet "PolyBoard/internal/net"
	"PolyBoard/internal/state"
	"PolyBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "polyboard.toml", "path to a TOML config file")
	discover := flag.Bool("discover", false, "list boards shared on the local network and exit")
	noShare := flag.Bool("no-share", false, "do not serve the live mirror")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *noShare {
		cfg.Share = false
	}
	if *verbose {
		cfg.Verbose = true
	}

	logger := log.Default()
	if !cfg.Verbose {
		logger = log.New(io.Discard, "", 0)
	}

	if *discover {
		runDiscover()
		return
	}
	if args := flag.Args(); len(args) > 0 && strings.HasPrefix(args[0], config.CustomURLScheme) {
		runViewer(cfg, args[0], logger)
		return
	}
	runHost(cfg, logger)
}

func runHost(cfg config.Config, logger *log.Logger) {
	log.Println("Starting as HOST")
	session := uuid.NewString()
	ed := editor.New(editor.Options{
		RedrawInterval: cfg.RedrawInterval(),
		PinRadius:      cfg.PinRadius,
		Logger:         logger,
	})

	shareLink := ""
	if cfg.Share {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		link, err := startSharing(ctx, cfg, session, ed)
		if err != nil {
			log.Printf("[SHARE] Live mirror disabled: %v", err)
		} else {
			shareLink = link
		}
	}

	ui.RunApp(ed, ui.AppOptions{
		Title:     "Polygon Board",
		Width:     float32(cfg.Width),
		Height:    float32(cfg.Height),
		ShareLink: shareLink,
	})
}

func startSharing(ctx context.Context, cfg config.Config, session string, ed *editor.Editor) (string, error) {
	hub := boardnet.NewHub(log.Default())
	srv, err := boardnet.Listen(fmt.Sprintf(":%d", cfg.SharePort), hub)
	if err != nil {
		return "", err
	}
	ed.OnChange = func(rev uint64, vs []state.Vertex) {
		if err := hub.Publish(session, rev, vs); err != nil {
			log.Printf("[SHARE] Publish failed: %v", err)
		}
	}
	go func() {
		if err := srv.Serve(ctx); err != nil {
			log.Printf("[SHARE] Server stopped: %v", err)
		}
	}()
	log.Printf("[SHARE] Mirror listening on %s", srv.Addr())

	if cfg.Advertise {
		mdnsServer, err := boardnet.Advertise(srv.Port(), session)
		if err != nil {
			log.Printf("[MDNS] %v", err)
		} else {
			context.AfterFunc(ctx, func() { mdnsServer.Shutdown() })
		}
	}
	return boardnet.ShareLink(config.CustomURLScheme, srv.Port()), nil
}

func runViewer(cfg config.Config, link string, logger *log.Logger) {
	log.Println("Starting as VIEWER")
	url, err := boardnet.ViewerURL(link, config.CustomURLScheme)
	if err != nil {
		log.Fatalf("Bad link: %v", err)
	}
	ed := editor.New(editor.Options{PinRadius: cfg.PinRadius, Logger: logger, ReadOnly: true})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := boardnet.Follow(ctx, url, logger, func(rev uint64, vs []state.Vertex) {
			ed.Mirror(rev, vs)
		})
		if err != nil && ctx.Err() == nil {
			ed.Report(fmt.Sprintf("Disconnected from host: %v", err), editor.SeverityError)
		}
	}()

	ui.RunApp(ed, ui.AppOptions{
		Title:    "Polygon Board (viewer)",
		Width:    float32(cfg.Width),
		Height:   float32(cfg.Height),
		ReadOnly: true,
	})
}

func runDiscover() {
	found := 0
	err := boardnet.Browse(2*time.Second, func(addr string) {
		found++
		fmt.Println(config.CustomURLScheme + addr)
	})
	if err != nil {
		log.Printf("[MDNS] Browse failed: %v", err)
		os.Exit(1)
	}
	if found == 0 {
		fmt.Println("No shared boards found.")
	}
}
