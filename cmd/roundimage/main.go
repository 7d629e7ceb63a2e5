// Command roundimage rounds the corners of one image and writes a PNG.
//
//	roundimage <input> <output> <radius> <percent|px>
//	roundimage <input> <output> <radius> <percent|px> \
//		<shadow true|false> <#rrggbb> <blur> <offset> \
//		<border true|false> <#rrggbb> <width> <solid|dashed|dotted>
package main

import (
	"fmt"
	"os"

	"github.com/ds124wfegd/roundimage/config"
	"github.com/ds124wfegd/roundimage/internal/pkg/options"
	"github.com/ds124wfegd/roundimage/internal/pkg/processor"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(config.GetEnv("ROUNDIMAGE_LOG_LEVEL", "warn"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SUCCESS")
}

func run(args []string) error {
	input, output, opts, err := options.FromArgs(args)
	if err != nil {
		return err
	}
	return processor.NewImageProcessor().Process(input, output, opts)
}
