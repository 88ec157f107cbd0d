package synthesis

import (
	"fmt"
	"math"
	"time"

	"github.com/mbaumgart/recap/internal/domain"
)

// BuildLocationBlocks groups an ordered run of hourly summaries into
// contiguous location blocks. Summaries sharing a resolved place (or travel
// signature) extend the open block; a change closes it and opens the next.
// Evidence-free summaries within the gap tolerance are absorbed into the
// open block and flagged as carried forward.
//
// The batch is rejected as a whole on contract violations: a summary whose
// end precedes its start, or input not ordered by start time.
func BuildLocationBlocks(summaries []domain.HourlySummary, places PlaceSet, cfg Config) ([]domain.LocationBlock, error) {
	if err := validateSummaries(summaries); err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}

	b := &blockBuilder{cfg: cfg, places: places}
	for i := range summaries {
		b.consume(&summaries[i])
	}
	b.closeOpen()
	return b.blocks, nil
}

func validateSummaries(summaries []domain.HourlySummary) error {
	for i := range summaries {
		s := &summaries[i]
		if s.EndTime.Before(s.StartTime) {
			return fmt.Errorf("summary %s ends before it starts: %w", s.ID, domain.ErrMalformedInput)
		}
		if i > 0 && s.StartTime.Before(summaries[i-1].StartTime) {
			return fmt.Errorf("summary %s out of order: %w", s.ID, domain.ErrMalformedInput)
		}
	}
	return nil
}

// signature identifies what an open block is tracking: a stay at one label,
// or one mode of travel.
type signature struct {
	travel   bool
	movement domain.MovementType
	label    string
}

type openBlock struct {
	sig          signature
	block        domain.LocationBlock
	evidenceFree bool

	weightedConf float64
	weightMin    float64
	activityMin  map[domain.ActivityType]float64
	activityLast map[domain.ActivityType]time.Time
	sessions     []domain.AppSession
	latSum       float64
	lonSum       float64
	points       int
}

type blockBuilder struct {
	cfg    Config
	places PlaceSet
	blocks []domain.LocationBlock
	open   *openBlock

	// lastEvidence is the end of the newest summary that carried usable
	// location samples; it anchors the carry-forward tolerance.
	lastEvidence time.Time
}

func (b *blockBuilder) consume(s *domain.HourlySummary) {
	b.bridgeGap(s.StartTime)

	lat, lon, points := centroid(s.LocationSamples)
	if points == 0 {
		b.consumeWithoutEvidence(s)
		return
	}

	sig, res := b.classify(s, lat, lon)
	if b.open == nil || b.open.sig != sig {
		b.closeOpen()
		b.openFrom(s, sig, res)
	}
	b.absorb(s, lat, lon, points)
	b.lastEvidence = s.EndTime
}

// bridgeGap handles missing summaries between the open block and the next
// one: short holes stretch the open block (carry-forward), long holes close
// it and insert an unknown block so coverage stays contiguous.
func (b *blockBuilder) bridgeGap(next time.Time) {
	if b.open == nil || !next.After(b.open.block.EndTime) {
		return
	}
	gap := next.Sub(b.open.block.EndTime)
	if gap <= b.cfg.CarryForwardGap {
		b.open.block.EndTime = next
		b.open.block.IsCarriedForward = true
		return
	}
	from := b.open.block.EndTime
	b.closeOpen()
	b.blocks = append(b.blocks, gapBlock(from, next))
}

func (b *blockBuilder) consumeWithoutEvidence(s *domain.HourlySummary) {
	switch {
	case b.open != nil && b.open.evidenceFree:
		// An unknown or carried block keeps absorbing evidence-free hours.
	case b.open != nil && s.EndTime.Sub(b.lastEvidence) <= b.cfg.CarryForwardGap:
		b.open.block.IsCarriedForward = true
	case b.open != nil:
		// Tolerance exceeded: the stay can no longer be trusted.
		b.closeOpen()
		b.openUnresolved(s)
	default:
		b.openUnresolved(s)
	}
	b.absorb(s, 0, 0, 0)
}

// openUnresolved opens a block for a summary with no location evidence.
// With a prior labeled block in history the place is propagated; otherwise
// the block is an unknown placeholder.
func (b *blockBuilder) openUnresolved(s *domain.HourlySummary) {
	if prev := b.places.Previous; prev != nil && len(b.blocks) == 0 {
		b.openFrom(s, signature{label: prev.LocationLabel}, Resolution{
			Label:           prev.LocationLabel,
			Category:        prev.LocationCategory,
			Known:           true,
			IsInferred:      prev.IsInferred,
			IsUserDefined:   prev.IsUserDefined,
			InferredPlaceID: prev.InferredPlaceID,
		})
		b.open.block.IsCarriedForward = true
	} else {
		b.openFrom(s, signature{label: domain.UnknownLabel}, unknownResolution(nil))
	}
	b.open.evidenceFree = true
}

func (b *blockBuilder) classify(s *domain.HourlySummary, lat, lon float64) (signature, Resolution) {
	moving, movement := dominantMovement(s.ActivitySegments)
	if moving {
		return signature{travel: true, movement: movement}, Resolution{
			Label:    transitLabel(movement),
			Category: domain.PlaceTransit,
		}
	}
	res := resolvePoint(lat, lon, b.places, b.cfg)
	return signature{label: res.Label}, res
}

// dominantMovement reports whether movement activities dominate the
// summary's segments, and which movement type leads.
func dominantMovement(segments []domain.ActivitySegment) (bool, domain.MovementType) {
	var movingMin, totalMin float64
	perMovement := make(map[domain.MovementType]float64)
	for _, seg := range segments {
		d := seg.EndTime.Sub(seg.StartTime).Minutes()
		if d <= 0 {
			continue
		}
		totalMin += d
		if m := domain.MovementFor(seg.Type); m != domain.MovementNone {
			movingMin += d
			perMovement[m] += d
		}
	}
	if totalMin == 0 || movingMin*2 <= totalMin {
		return false, domain.MovementNone
	}
	best := domain.MovementNone
	bestMin := 0.0
	for m, d := range perMovement {
		if d > bestMin || (d == bestMin && m < best) {
			best, bestMin = m, d
		}
	}
	return true, best
}

func transitLabel(m domain.MovementType) string {
	switch m {
	case domain.MovementWalking:
		return "Walking"
	case domain.MovementCycling:
		return "Cycling"
	case domain.MovementDriving:
		return "Driving"
	case domain.MovementTransit:
		return "In Transit"
	}
	return "Traveling"
}

func (b *blockBuilder) openFrom(s *domain.HourlySummary, sig signature, res Resolution) {
	blk := domain.LocationBlock{
		ID:               "blk-" + s.ID,
		Type:             domain.BlockStationary,
		LocationLabel:    res.Label,
		LocationCategory: res.Category,
		InferredPlaceID:  res.InferredPlaceID,
		IsInferred:       res.IsInferred,
		IsUserDefined:    res.IsUserDefined,
		StartTime:        s.StartTime,
		EndTime:          s.StartTime,
	}
	if sig.travel {
		blk.Type = domain.BlockTravel
		blk.MovementType = sig.movement
	}
	if !res.Known && len(res.Alternatives) > 0 {
		blk.PlaceAlternatives = res.Alternatives
	}
	b.open = &openBlock{
		sig:          sig,
		block:        blk,
		activityMin:  make(map[domain.ActivityType]float64),
		activityLast: make(map[domain.ActivityType]time.Time),
	}
}

// absorb folds one summary into the open block.
func (b *blockBuilder) absorb(s *domain.HourlySummary, lat, lon float64, points int) {
	o := b.open
	blk := &o.block

	if s.EndTime.After(blk.EndTime) {
		blk.EndTime = s.EndTime
	}
	blk.Summaries = append(blk.Summaries, *s)
	blk.SummaryIDs = append(blk.SummaryIDs, s.ID)
	blk.ActivitySegments = append(blk.ActivitySegments, s.ActivitySegments...)
	blk.HasFeedback = blk.HasFeedback || s.HasFeedback
	blk.IsLocked = blk.IsLocked || s.IsLocked

	weight := s.EndTime.Sub(s.StartTime).Minutes()
	o.weightedConf += s.Confidence * weight
	o.weightMin += weight

	for _, seg := range s.ActivitySegments {
		d := seg.EndTime.Sub(seg.StartTime).Minutes()
		if d <= 0 {
			continue
		}
		o.activityMin[seg.Type] += d
		if seg.EndTime.After(o.activityLast[seg.Type]) {
			o.activityLast[seg.Type] = seg.EndTime
		}
	}

	o.sessions = append(o.sessions, s.AppSessions...)

	if points > 0 {
		o.latSum += lat * float64(points)
		o.lonSum += lon * float64(points)
		o.points += points
		o.evidenceFree = false
		if blk.Geohash == "" {
			for _, smp := range s.LocationSamples {
				if smp.Geohash != "" {
					blk.Geohash = smp.Geohash
					break
				}
			}
		}
		if blk.Type == domain.BlockTravel {
			blk.DistanceKM += pathLengthKM(s.LocationSamples)
		}
	}
}

func (b *blockBuilder) closeOpen() {
	if b.open == nil {
		return
	}
	o := b.open
	blk := o.block

	blk.DurationMin = int(math.Round(blk.EndTime.Sub(blk.StartTime).Minutes()))
	if o.weightMin > 0 {
		blk.Confidence = clamp01(o.weightedConf / o.weightMin)
	}
	blk.Apps, blk.TotalScreenMin = AggregateAppUsage(o.sessions, blk.StartTime, blk.EndTime)
	blk.DominantActivity = dominantActivity(o.activityMin, o.activityLast)
	blk.TotalLocationSamples = o.points
	if len(blk.PlaceAlternatives) > 0 && o.points > 0 {
		blk.CentroidLat = o.latSum / float64(o.points)
		blk.CentroidLon = o.lonSum / float64(o.points)
	}

	b.blocks = append(b.blocks, blk)
	b.open = nil
}

// dominantActivity picks the activity with the greatest cumulative duration,
// breaking ties toward the most recent occurrence.
func dominantActivity(minutes map[domain.ActivityType]float64, last map[domain.ActivityType]time.Time) domain.ActivityType {
	best := domain.ActivityUnknown
	bestMin := 0.0
	for a, d := range minutes {
		switch {
		case d > bestMin:
			best, bestMin = a, d
		case d == bestMin && last[a].After(last[best]):
			best = a
		}
	}
	return best
}

func gapBlock(from, to time.Time) domain.LocationBlock {
	return domain.LocationBlock{
		ID:               "blk-gap-" + from.UTC().Format("20060102T150405Z"),
		Type:             domain.BlockStationary,
		LocationLabel:    domain.UnknownLabel,
		LocationCategory: domain.PlaceUnknown,
		StartTime:        from,
		EndTime:          to,
		DurationMin:      int(math.Round(to.Sub(from).Minutes())),
		DominantActivity: domain.ActivityUnknown,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
