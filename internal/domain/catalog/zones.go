package catalog

import "math"

type ZoneKind string

const (
	ZonePollution ZoneKind = "pollution"
	ZoneHeat      ZoneKind = "heat"
	ZoneMosquito  ZoneKind = "mosquito"
	ZoneSafe      ZoneKind = "safe"
)

// Position is a point in the normalized 0-100 map coordinate space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SourceReading is provenance metadata attached to a zone, display-only.
type SourceReading struct {
	Source    string `json:"source"`
	Reading   string `json:"reading"`
	Timestamp string `json:"timestamp"`
}

type RiskZone struct {
	ID          string         `json:"id"`
	Kind        ZoneKind       `json:"kind"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Position    Position       `json:"position"`
	HPImpact    int            `json:"hp_impact"`
	Reading     *SourceReading `json:"reading,omitempty"`
}

// ZoneRadius is the circular detection radius in map units.
const ZoneRadius = 15.0

// ZoneAt returns the first zone in catalog order whose center lies within
// ZoneRadius of pos, or nil when none is in range. Catalog order is the
// tie-break when detection circles overlap.
func ZoneAt(pos Position, zones []RiskZone) *RiskZone {
	for i := range zones {
		dx := pos.X - zones[i].Position.X
		dy := pos.Y - zones[i].Position.Y
		if math.Sqrt(dx*dx+dy*dy) < ZoneRadius {
			return &zones[i]
		}
	}
	return nil
}
