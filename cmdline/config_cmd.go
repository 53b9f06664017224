package main

import "encoding/json"
import "flag"
import "fmt"
import "io"
import "log"

import "github.com/pwiecz/redelca/configuration"

type configCmd struct {
	flags        *flag.FlagSet
	maxPoints    *int
	defaultPower *int
	rangeSq      *float64
	numWorkers   *int
	save         *bool
}

func NewConfigCmd() configCmd {
	flags := flag.NewFlagSet("config", flag.ExitOnError)
	return configCmd{
		flags:        flags,
		maxPoints:    flags.Int("max_points", 0, "capacity of the sample buffer. If <= 0 keep the configured value"),
		defaultPower: flags.Int("default_power", 0, "coded power used when no specific power is computed. If <= 0 keep the configured value"),
		rangeSq:      flags.Float64("range_sq", 0, "squared radio range of simulated position broadcasts. If <= 0 keep the configured value"),
		numWorkers:   flags.Int("num_workers", 0, "number of simulation workers. If <= 0 keep the configured value"),
		save:         flags.Bool("save", false, "write the effective configuration to the user config directory"),
	}
}

func (c *configCmd) Usage(fileBase string) {
	fmt.Fprintf(flag.CommandLine.Output(), "%s config [-max_points=<n>] [-default_power=<n>] [-range_sq=<d>] [-num_workers=<n>] [-save]\n", fileBase)
	c.flags.PrintDefaults()
}

// apply overrides fields of conf set on the command line.
func (c *configCmd) apply(conf configuration.Configuration) configuration.Configuration {
	if *c.maxPoints > 0 {
		conf.MaxPoints = *c.maxPoints
	}
	if *c.defaultPower > 0 {
		conf.DefaultPower = *c.defaultPower
	}
	if *c.rangeSq > 0 {
		conf.RadioRangeSq = *c.rangeSq
	}
	if *c.numWorkers > 0 {
		conf.NumWorkers = *c.numWorkers
	}
	return conf
}

func (c *configCmd) Run(args []string, output io.Writer, conf *configuration.Configuration) {
	c.flags.Parse(args)
	if len(c.flags.Args()) != 0 {
		log.Fatalln("config command takes no file arguments")
	}
	effective := c.apply(*conf)
	bytes, err := json.MarshalIndent(&effective, "", "  ")
	if err != nil {
		log.Fatalln("Could not encode configuration:", err)
	}
	fmt.Fprintln(output, string(bytes))
	if *c.save {
		if err := configuration.SaveConfiguration(&effective); err != nil {
			log.Fatalln("Could not save configuration:", err)
		}
	}
}
