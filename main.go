package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-cpa/catalog"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "Usage: nav-cpa [flags] <command> [args]\n\nCommands:\n")
		for _, name := range commandNames() {
			c := commands[name]
			fmt.Fprintf(fs.Output(), "  %-13s %s\n", name, c.usage)
		}
		fmt.Fprintf(fs.Output(), "\nPositions are 'lat,lon', a reference name or a catalog code.\n\nFlags:\n")
		fs.PrintDefaults()
	}
}

func parseExpes(s string) map[string]bool {
	expes := make(map[string]bool)
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			expes[e] = true
		}
	}
	return expes
}

func main() {

	fs := flag.NewFlagSet("nav-cpa", flag.ExitOnError)
	var (
		catalogFile = fs.String("catalog", "", "CSV catalog of locations (code,name,latitude,longitude)")
		debug       = fs.Bool("debug", false, "debug logging")
		logFile     = fs.String("log-file", "", "write logs to this file, rotated")
		cpuprofile  = fs.Bool("cpuprofile", false, "write a CPU profile")
		expes       = fs.String("expes", "", "comma separated experiments to enable")
		nearest     = fs.Int("nearest", 5, "number of locations listed by 'nearest'")
		_           = fs.String("config", "", "config file (flag value pairs)")
	)
	fs.Usage = usage(fs)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		log.WithError(err).Fatal("Error parsing flags")
	}

	initLogger(logConfig{debug: *debug, file: *logFile})

	resolvers := catalog.Chain{catalog.References, catalog.Literal{}}
	var c *catalog.Catalog
	if *catalogFile != "" {
		var err error
		c, err = catalog.Load(*catalogFile)
		if err != nil {
			log.WithError(err).Fatal("Error loading catalog")
		}
		resolvers = append(catalog.Chain{c}, resolvers...)
	}

	e := env{
		resolver: resolvers,
		catalog:  c,
		expes:    parseExpes(*expes),
		nearest:  *nearest,
		out:      os.Stdout,
	}

	exec := func() error {
		if *cpuprofile {
			defer profile.Start().Stop()
		}
		return e.run(fs.Args())
	}

	if err := exec(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(fs.Output(), err)
			fs.Usage()
			os.Exit(2)
		}
		log.WithError(err).Fatal("Command failed")
	}
}
