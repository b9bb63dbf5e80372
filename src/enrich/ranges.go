package enrich

import (
	"strings"

	"diving-backend/src/storage"
)

// Range is a closed interval of water temperature in degrees Celsius.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(t float64) bool {
	return t >= r.Min && t <= r.Max
}

// Species not present here fall back to their rarity tier, and fish with
// neither a name match nor a rarity get the default. Static configuration
// data, not derived from anything.
var speciesRanges = map[string]Range{
	"clownfish":        {24, 28},
	"lionfish":         {23, 27},
	"parrotfish":       {23, 28},
	"barracuda":        {22, 28},
	"moray eel":        {22, 27},
	"napoleon wrasse":  {23, 27},
	"manta ray":        {20, 26},
	"whale shark":      {21, 26},
	"hawksbill turtle": {24, 29},
	"dugong":           {24, 30},
}

var rarityRanges = map[storage.Rarity]Range{
	storage.RarityCommon: {19, 27},
	storage.RarityRare:   {22, 28},
	storage.RarityEpic:   {24, 29},
}

var defaultRange = Range{20, 30}

// PreferredRange is case-insensitive on the species name.
func PreferredRange(name string, rarity storage.Rarity) Range {
	if r, ok := speciesRanges[strings.ToLower(name)]; ok {
		return r
	}
	if r, ok := rarityRanges[rarity]; ok {
		return r
	}

	return defaultRange
}
