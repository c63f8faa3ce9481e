package timezone

import (
	"slices"
	"time"
)

// offsetAt returns the UTC offset of the service zone at instant t.
func (s *Service) offsetAt(t time.Time) time.Duration {
	_, offset := t.In(s.location).Zone()

	return time.Duration(offset) * time.Second
}

// resolveWallClock maps a local wall-clock reading to its UTC instant. The
// reading is carried in wall's UTC fields, so wall.Add(-offset) is the instant
// that reads that way under offset.
//
// A reading repeated by a fall-back transition resolves to its earliest
// occurrence, or its latest when latest is set. A reading skipped by a
// spring-forward transition resolves to the edge of the gap: the transition
// instant, or the millisecond before it when latest is set.
func (s *Service) resolveWallClock(wall time.Time, latest bool) time.Time {
	probe := wall.Add(-s.offsetAt(wall))
	zoneStart, zoneEnd := probe.In(s.location).ZoneBounds()

	offsets := []time.Duration{s.offsetAt(probe)}
	if !zoneStart.IsZero() {
		offsets = append(offsets, s.offsetAt(zoneStart.Add(-time.Nanosecond)))
	}

	if !zoneEnd.IsZero() {
		offsets = append(offsets, s.offsetAt(zoneEnd))
	}

	var matches []time.Time

	for _, offset := range offsets {
		candidate := wall.Add(-offset)
		if s.offsetAt(candidate) == offset && !slices.ContainsFunc(matches, candidate.Equal) {
			matches = append(matches, candidate)
		}
	}

	if len(matches) > 0 {
		slices.SortFunc(matches, func(a, b time.Time) int { return a.Compare(b) })

		if latest {
			return matches[len(matches)-1].UTC()
		}

		return matches[0].UTC()
	}

	for _, transition := range []time.Time{zoneStart, zoneEnd} {
		if transition.IsZero() {
			continue
		}

		before := s.offsetAt(transition.Add(-time.Nanosecond))
		after := s.offsetAt(transition)

		if !wall.Add(-before).Before(transition) && wall.Add(-after).Before(transition) {
			if latest {
				return transition.Add(-time.Millisecond).UTC()
			}

			return transition.UTC()
		}
	}

	// Unreachable for tzdata zones; keep the plain conversion as a last resort.
	return wall.Add(-s.offsetAt(wall)).UTC()
}
