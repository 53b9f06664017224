package main

import "flag"
import "fmt"
import "io"
import "log"

import "github.com/pwiecz/redelca/configuration"
import "github.com/pwiecz/redelca/lib"

type runCmd struct {
	flags     *flag.FlagSet
	self      *pointValue
	png       *string
	width     *int
	neighbors *bool
}

func NewRunCmd() runCmd {
	flags := flag.NewFlagSet("run", flag.ExitOnError)
	cmd := runCmd{
		flags:     flags,
		self:      &pointValue{},
		png:       flags.String("png", "", "render the triangulation to this image file, \"-\" writes it to stdout"),
		width:     flags.Int("width", 512, "width and height of the rendered image"),
		neighbors: flags.Bool("neighbors", false, "print power needed for every ring neighbor"),
	}
	flags.Var(cmd.self, "self", "override position of the local node")
	return cmd
}

func (r *runCmd) Usage(fileBase string) {
	fmt.Fprintf(flag.CommandLine.Output(), "%s run [-self=<x>,<y>] [-png=<file>] [-neighbors] <scenario_file>\n", fileBase)
	r.flags.PrintDefaults()
}

// initializeCount converts triangulation status to the number of
// triangulated neighbors reported by the node.
func initializeCount(status lib.Status) int {
	if status == lib.StatusTooFewPoints {
		return 1
	}
	return int(status) - 1
}

func printReport(output io.Writer, result lib.Result) {
	fmt.Fprintln(output, "DELAUNAY")
	fmt.Fprintf(output, "INITIALIZE %d\n", initializeCount(result.Status))
	fmt.Fprintf(output, "REDELCA %d\n", result.Ring.Degree())
	fmt.Fprintf(output, "POWER %d\n", result.Power)
	fmt.Fprintf(output, "MEMORY %d\n", result.PeakMemory)
}

func (r *runCmd) Run(args []string, output io.Writer, conf *configuration.Configuration) {
	r.flags.Parse(args)
	fileArgs := r.flags.Args()
	if len(fileArgs) != 1 {
		log.Fatalln("run command requires exactly one file argument")
	}
	if *r.width < 16 {
		log.Fatalln("-width must be at least 16")
	}
	samples, err := lib.ParseScenarioFile(fileArgs[0])
	if err != nil {
		log.Fatalf("Could not parse file %s : %v\n", fileArgs[0], err)
	}
	if r.self.IsSet {
		samples[0].Pos = r.self.Point
	}
	node := lib.NewNode(conf.NodeOptions()...)
	node.SetSelf(samples[0].ID, samples[0].Pos.X, samples[0].Pos.Y)
	for _, s := range samples[1:] {
		node.Admit(s.ID, s.Pos.X, s.Pos.Y, s.RSSI)
	}
	result := node.RunTopologyControl()
	printReport(output, result)
	if result.Err != nil {
		log.Println(result.Err)
	}
	if *r.neighbors {
		for _, np := range result.Search.Neighbors {
			if np.Reachable {
				fmt.Fprintf(output, "NEIGHBOR %d direct %d relay %d power %d\n", np.ID, np.Direct, np.Relay, np.Power)
			} else {
				fmt.Fprintf(output, "NEIGHBOR %d direct %d unreachable\n", np.ID, np.Direct)
			}
		}
	}
	if *r.png != "" {
		img := renderCycle(node.Samples().Snapshot(), result, node.PowerTable(), *r.width)
		if err := writeImage(img, *r.png); err != nil {
			log.Fatalf("Could not write image %s : %v\n", *r.png, err)
		}
	}
}
