package main

import "flag"
import "fmt"
import "io"
import "log"

import "github.com/pwiecz/redelca/configuration"
import "github.com/pwiecz/redelca/lib"

type simulateCmd struct {
	flags   *flag.FlagSet
	rangeSq *float64
}

func NewSimulateCmd() simulateCmd {
	flags := flag.NewFlagSet("simulate", flag.ExitOnError)
	return simulateCmd{
		flags:   flags,
		rangeSq: flags.Float64("range_sq", 0, "squared radio range of position broadcasts. If <= 0 use value from the configuration file, or range of the strongest power setting"),
	}
}

func (s *simulateCmd) Usage(fileBase string) {
	fmt.Fprintf(flag.CommandLine.Output(), "%s simulate [-range_sq=<d>] <network_file>\n", fileBase)
	s.flags.PrintDefaults()
}

func (s *simulateCmd) Run(args []string, output io.Writer, conf *configuration.Configuration, numWorkers int, progressFunc func(int, int)) {
	s.flags.Parse(args)
	fileArgs := s.flags.Args()
	if len(fileArgs) != 1 {
		log.Fatalln("simulate command requires exactly one file argument")
	}
	network, err := lib.ParseNetworkFile(fileArgs[0])
	if err != nil {
		log.Fatalf("Could not parse file %s : %v\n", fileArgs[0], err)
	}
	rangeSq := *s.rangeSq
	if rangeSq <= 0 {
		rangeSq = conf.RadioRangeSq
	}
	reports := lib.Simulate(network, rangeSq, numWorkers, progressFunc, conf.NodeOptions()...)
	fmt.Fprintln(output, "")
	fmt.Fprintln(output, reportTable(reports))
	numDefault := 0
	for _, r := range reports {
		if r.Result.Default {
			numDefault++
		}
	}
	fmt.Fprintf(output, "%d nodes, %d without specific power\n", len(reports), numDefault)
}
