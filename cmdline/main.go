package main

import "flag"
import "log"
import "os"
import "runtime"

import "path/filepath"
import "runtime/pprof"

import "golang.org/x/term"

import "github.com/pwiecz/redelca/configuration"
import "github.com/pwiecz/redelca/lib"

func main() {
	fileBase := filepath.Base(os.Args[0])
	cpuprofile := flag.String("cpuprofile", "", "write CPU profile to this file")
	numWorkers := flag.Int("num_workers", 0, "if applicable for given command use that many worker threads. If <= 0 use value from the configuration file, or as many as there are CPUs on the machine")
	showProgress := flag.Bool("progress", true, "show progress bar")
	flag.BoolVar(showProgress, "P", true, "show progress bar")
	runCmd := NewRunCmd()
	simulateCmd := NewSimulateCmd()
	configCmd := NewConfigCmd()

	defaultUsage := flag.Usage
	flag.Usage = func() {
		defaultUsage()
		runCmd.Usage(fileBase)
		simulateCmd.Usage(fileBase)
		configCmd.Usage(fileBase)
	}
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(0)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	conf := configuration.LoadConfiguration()
	progressFunc := lib.PrintProgressBar
	if !*showProgress || !term.IsTerminal(int(os.Stdout.Fd())) {
		progressFunc = func(int, int) {}
	}
	workers := runtime.GOMAXPROCS(0)
	if *numWorkers > 0 {
		workers = *numWorkers
	} else if conf.NumWorkers > 0 {
		workers = conf.NumWorkers
	}
	switch flag.Args()[0] {
	case "run":
		runCmd.Run(flag.Args()[1:], os.Stdout, conf)
	case "simulate":
		simulateCmd.Run(flag.Args()[1:], os.Stdout, conf, workers, progressFunc)
	case "config":
		configCmd.Run(flag.Args()[1:], os.Stdout, conf)
	default:
		log.Fatalf("Unknown command: \"%s\"\n", flag.Args()[0])
	}
}
