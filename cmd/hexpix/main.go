package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/hexpix"
	log "github.com/sirupsen/logrus"
)

type options struct {
	File    string `short:"f" long:"file"    description:"File to convert" required:"true"`
	Output  string `short:"o" long:"output"  description:"Output file (.zst suffix compresses it)" required:"true"`
	Depth   int    `short:"d" long:"depth"   description:"Bits per channel (2, 4 or 8)" default:"8"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func parseCmd(args []string) (options, error) {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	_, err := cmdParser.ParseArgs(args)
	return opts, err
}

func run(opts options) error {
	depth, err := hexpix.ParseDepth(opts.Depth)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"file":   opts.File,
		"output": opts.Output,
		"depth":  depth,
	})

	logger.Debug("Loading image")
	pixmap, err := hexpix.LoadPixmap(opts.File)
	if err != nil {
		return err
	}

	logger = logger.WithFields(log.Fields{
		"width":  pixmap.Width,
		"height": pixmap.Height,
	})
	logger.Info("Converting image")

	if err = pixmap.SaveHex(opts.Output, depth); err != nil {
		return err
	}

	logger.Debug("Done")
	return nil
}

func main() {
	opts, err := parseCmd(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err = run(opts); err != nil {
		log.WithError(err).Fatal("Conversion failed")
	}
}
