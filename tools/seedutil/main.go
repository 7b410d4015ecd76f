package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"zonecraft/internal/engine"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/utils"
	"zonecraft/pkg/zonemap"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "random":
		fmt.Println(utils.NewRand(time.Now().UnixNano()).Int63())
	case "name":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil name <zone_name>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	case "dump":
		if len(os.Args) < 5 {
			fmt.Println("Usage: seedutil dump <instances.yaml> <instance> <seed>")
			return
		}
		seed, err := strconv.ParseInt(os.Args[4], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			os.Exit(1)
		}
		if err := dump(os.Args[2], os.Args[3], seed); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	default:
		printHelp()
	}
}

// dump prints the zone as text, top row first.
func dump(path, instance string, seed int64) error {
	logger.Init()
	logger.Discard()

	assets, err := engine.LoadInstanceAssets(path)
	if err != nil {
		return err
	}
	layout, report, err := assets.Generate(instance, seed)
	if err != nil {
		return err
	}

	size := layout.Size()
	markers := layout.MarkerTable()
	glyphAt := func(x, y int) byte {
		for _, mt := range zonemap.AllMarkerTypes {
			for _, p := range markers[mt] {
				if p.X == x && p.Y == y {
					return mt.Glyph().Char()
				}
			}
		}
		t, _ := layout.Tile(x, y)
		return t.Glyph().Char()
	}

	row := make([]byte, size.Width)
	for y := size.Height - 1; y >= 0; y-- {
		for x := 0; x < size.Width; x++ {
			row[x] = glyphAt(x, y)
		}
		fmt.Println(string(row))
	}
	fmt.Printf("%s seed %d: %dx%d, %d colliders, %d markers, skipped %v\n",
		instance, seed, size.Width, size.Height, len(layout.Colliders()), markers.Total(), report.PrefabsSkipped)
	return nil
}

func printHelp() {
	fmt.Println("Seed Utility")
	fmt.Println("Usage:")
	fmt.Println("  seedutil random                           - Print a random seed")
	fmt.Println("  seedutil name <zone_name>                 - Seed derived from a name")
	fmt.Println("  seedutil dump <instances> <instance> <seed> - Print a zone as text")
}
