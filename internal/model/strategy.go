package model

import "fmt"

// Strategy selects how a corrupted file is repaired.
type Strategy string

const (
	// StrategyMarker keeps everything up to and including the first marker.
	StrategyMarker Strategy = "marker"
	// StrategyMarkerBefore keeps everything before the first marker.
	StrategyMarkerBefore Strategy = "marker-before"
	// StrategyDepth removes the first line that drives brace depth negative.
	StrategyDepth Strategy = "depth"
	// StrategyAuto uses markers when present and falls back to depth repair.
	StrategyAuto Strategy = "auto"
)

// Strategies lists every accepted strategy name.
var Strategies = []Strategy{StrategyMarker, StrategyMarkerBefore, StrategyDepth, StrategyAuto}

// ParseStrategy validates a strategy name. An empty name means auto.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyAuto, nil
	}

	for _, known := range Strategies {
		if string(known) == s {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown strategy %q (want one of %v)", s, Strategies)
}

// NeedsMarkers reports whether the strategy cannot run without markers.
func (s Strategy) NeedsMarkers() bool {
	return s == StrategyMarker || s == StrategyMarkerBefore
}
