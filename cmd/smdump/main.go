// Command smdump loads a Super Metroid cartridge image and prints a
// short summary of what was found. It exists to demonstrate the
// supermetroid library surface, not as a general-purpose tool: no
// flags, no rendered output, no companion data files.
package main

import (
	"fmt"
	"log"
	"os"

	"supermetroid"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: smdump <rom-file>")
		os.Exit(1)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading rom: %v", err)
	}

	data, err := supermetroid.Load(rom)
	if err != nil {
		log.Fatalf("loading rom: %v", err)
	}

	fmt.Printf("rooms:      %d\n", len(data.RoomMdb))
	fmt.Printf("level data: %d unique blobs\n", len(data.LevelData))
	fmt.Printf("plm lists:  %d\n", len(data.PlmPopulation))
	fmt.Printf("tilesets:   %d\n", len(data.TileSets))
	fmt.Printf("tiles:      %d unique blobs\n", len(data.Tiles))
	fmt.Printf("tile tables: %d\n", len(data.TileTables))
	fmt.Printf("palettes:   %d\n", len(data.Palettes))
}
