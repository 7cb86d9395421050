package cave

import "github.com/lawnchairsociety/cavegen/internal/logger"

// Prune overwrites every region smaller than threshold with replacement and
// returns the regions that were kept along with the number of cells changed.
// Wall regions touching the grid frame are always kept so the frame stays
// solid.
func Prune(g *Grid, regions []Region, threshold int, replacement Tile) ([]Region, int) {
	var kept []Region
	removed := 0
	for _, region := range regions {
		if len(region) >= threshold || (replacement == Floor && region.touchesFrame(g)) {
			kept = append(kept, region)
			continue
		}
		for _, c := range region {
			g.cells[g.index(c.X, c.Y)] = replacement
		}
		removed += len(region)
	}
	return kept, removed
}

// pruneRegions removes small wall regions, then small floor regions, and
// returns the surviving floor regions. Floor regions are extracted only after
// wall pruning because opening walls can merge floor space.
func pruneRegions(g *Grid, wallThreshold, roomThreshold int) []Region {
	walls := Regions(g, Wall)
	keptWalls, opened := Prune(g, walls, wallThreshold, Floor)
	logger.Debug("Pruned wall regions",
		"regions", len(walls), "kept", len(keptWalls), "cells_opened", opened)

	floors := Regions(g, Floor)
	keptFloors, filled := Prune(g, floors, roomThreshold, Wall)
	logger.Debug("Pruned floor regions",
		"regions", len(floors), "kept", len(keptFloors), "cells_filled", filled)

	return keptFloors
}
