package synthesis

import (
	"sort"

	"github.com/mbaumgart/recap/internal/domain"
)

// PlaceSet is the snapshot of place knowledge a synthesis pass works with.
// All fields are read-only during the pass.
type PlaceSet struct {
	Saved    []domain.SavedPlace
	Inferred []domain.InferredPlace

	// Nearby holds named places around the user's recent area, used to
	// populate disambiguation alternatives for unresolved samples.
	Nearby []domain.PlaceAlternative

	// Previous is the most recent labeled block from earlier history,
	// used to carry a place forward across an evidence-free start of day.
	Previous *domain.LocationBlock
}

// Resolution is the outcome of resolving one sample against the place set.
type Resolution struct {
	Label           string
	Category        domain.PlaceCategory
	Known           bool
	IsInferred      bool
	IsUserDefined   bool
	InferredPlaceID string
	Confidence      float64
	Alternatives    []domain.PlaceAlternative
}

// ResolvePlace resolves a location sample to exactly one of: a user-defined
// label, an inferred place label, or an unknown placeholder with
// disambiguation alternatives. It is a pure function over the place set;
// invalid coordinates yield unknown with no alternatives, never an error.
func ResolvePlace(sample domain.LocationSample, places PlaceSet, cfg Config) Resolution {
	lat, lon, ok := samplePoint(sample)
	if !ok {
		return unknownResolution(nil)
	}
	return resolvePoint(lat, lon, places, cfg)
}

func resolvePoint(lat, lon float64, places PlaceSet, cfg Config) Resolution {
	if r, ok := matchSaved(lat, lon, places.Saved); ok {
		return r
	}
	if r, ok := matchInferred(lat, lon, places.Inferred, cfg); ok {
		return r
	}
	return unknownResolution(nearbyAlternatives(lat, lon, places.Nearby, cfg))
}

func matchSaved(lat, lon float64, saved []domain.SavedPlace) (Resolution, bool) {
	type hit struct {
		place domain.SavedPlace
		dist  float64
	}
	var hits []hit
	for _, p := range saved {
		d := haversineM(lat, lon, p.Lat, p.Lon)
		if d <= p.RadiusM {
			hits = append(hits, hit{place: p, dist: d})
		}
	}
	if len(hits) == 0 {
		return Resolution{}, false
	}
	// Nearest wins; equal distances break toward the tighter radius.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].place.RadiusM < hits[j].place.RadiusM
	})
	best := hits[0].place
	return Resolution{
		Label:         best.Label,
		Category:      best.Category,
		Known:         true,
		IsUserDefined: true,
		Confidence:    1.0,
	}, true
}

func matchInferred(lat, lon float64, inferred []domain.InferredPlace, cfg Config) (Resolution, bool) {
	bestDist := cfg.InferredToleranceM
	var best *domain.InferredPlace
	for i := range inferred {
		d := haversineM(lat, lon, inferred[i].Lat, inferred[i].Lon)
		if d <= bestDist {
			bestDist = d
			best = &inferred[i]
		}
	}
	if best == nil {
		return Resolution{}, false
	}
	return Resolution{
		Label:           best.Label,
		Category:        best.Category,
		Known:           true,
		IsInferred:      true,
		InferredPlaceID: best.ID,
		Confidence:      best.Confidence,
	}, true
}

func nearbyAlternatives(lat, lon float64, nearby []domain.PlaceAlternative, cfg Config) []domain.PlaceAlternative {
	var alts []domain.PlaceAlternative
	for _, a := range nearby {
		d := haversineM(lat, lon, a.Lat, a.Lon)
		if d > cfg.AlternativeRadiusM {
			continue
		}
		a.DistanceM = d
		alts = append(alts, a)
	}
	sort.Slice(alts, func(i, j int) bool { return alts[i].DistanceM < alts[j].DistanceM })
	if cfg.MaxAlternatives > 0 && len(alts) > cfg.MaxAlternatives {
		alts = alts[:cfg.MaxAlternatives]
	}
	return alts
}

func unknownResolution(alts []domain.PlaceAlternative) Resolution {
	return Resolution{
		Label:        domain.UnknownLabel,
		Category:     domain.PlaceUnknown,
		Known:        false,
		Confidence:   0,
		Alternatives: alts,
	}
}
