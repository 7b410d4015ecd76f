// Command zoneview renders generated zones in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"zonecraft/internal/engine"
	"zonecraft/internal/preview"
	"zonecraft/internal/version"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/utils"
	"zonecraft/pkg/zonemap"
)

func main() {
	var (
		instancesPath = flag.String("instances", "configs/instances.yaml", "Path to instance config")
		instance      = flag.String("instance", "", "Instance to generate (defaults to the hub)")
		seed          = flag.Int64("seed", 0, "Zone seed (0 for random)")
		name          = flag.String("name", "", "Derive the seed from a name instead")
		showVersion   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Init()
	logger.Discard()

	assets, err := engine.LoadInstanceAssets(*instancesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *instance == "" {
		*instance = assets.Hub
	}
	if _, err := assets.Instance(*instance); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng := utils.NewRand(time.Now().UnixNano())
	switch {
	case *name != "":
		*seed = utils.StringToSeed(*name)
	case *seed == 0:
		*seed = rng.Int63()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	generate := func(s int64) (*zonemap.MapLayout, zonemap.Report, error) {
		return assets.Generate(*instance, s)
	}
	preview.NewViewer(screen, *instance, *seed, generate, rng.Int63).Run()
}
