package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/picnotes/internal/logging"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("picnotes", "Pictures and notes board")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level: debug, info, warning, error or none").
		Envar("PICNOTES_LOG_LEVEL").
		Default("warning").
		StringVar(&s.logLevel)
	app.Flag("config", "Path to a TOML config file").
		Short('c').
		Envar("PICNOTES_CONFIG").
		StringVar(&s.configPath)
	app.Flag("data", "Directory for picture files").
		Short('d').
		Envar("PICNOTES_DATA").
		Default(".").
		StringVar(&s.dataDir)

	render := app.Command("render", "Replay an event script and save the board as PNG and PDF")
	var (
		scriptPath = render.Arg("script", "Path to the event script").Required().String()
		outDir     = render.Flag("output", "Output directory").Short('o').Default(".").String()
		name       = render.Flag("name", "Base name for output files").Short('n').Default("board").String()
		noPDF      = render.Flag("no-pdf", "Do not write a PDF").Bool()
	)

	serve := app.Command("serve", "Accept events over websocket connections")
	var (
		listen   = serve.Flag("listen", "Listen address").Short('l').Envar("PICNOTES_LISTEN").Default(":8765").String()
		announce = serve.Flag("announce", "Announce the server with mDNS").Bool()
		snapDir  = serve.Flag("snapshot", "Write a snapshot to this directory on shutdown").String()
	)

	send := app.Command("send", "Send an event script to a server")
	var (
		sendScript = send.Arg("script", "Path to the event script").Required().String()
		url        = send.Flag("url", "Websocket URL of the server").Short('u').String()
		browse     = send.Flag("browse", "Look for a server with mDNS").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level, ok := logging.ParseLevel(s.logLevel)
	if !ok {
		fmt.Printf("Error: invalid log level %q\n", s.logLevel)
		os.Exit(1)
	}
	logging.SetLevel(level)

	var err error
	switch command {
	case render.FullCommand():
		err = doRender(s, *scriptPath, *outDir, *name, !*noPDF)
	case serve.FullCommand():
		err = doServe(s, *listen, *announce, *snapDir)
	case send.FullCommand():
		err = doSend(*sendScript, *url, *browse)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
