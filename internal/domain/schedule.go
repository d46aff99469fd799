package domain

import (
	"fmt"
	"time"
)

// IntervalDuration converts fractional hours (e.g. 2.5) to a duration.
func IntervalDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// GenerateSchedule produces the ordered day plan for day's calendar date:
// a feeding every intervalHours from first through last, each followed by
// awake and nap blocks, a night routine squeezed in before the final feed
// when there is slack, and an open-ended night sleep after it.
//
// Degenerate inputs (interval <= 0 or first after last) yield an empty
// sequence rather than an error, so callers always have something to render.
func GenerateSchedule(day time.Time, first TimeOfDay, intervalHours float64, last TimeOfDay) []Block {
	interval := IntervalDuration(intervalHours)
	firstFeed := first.At(day)
	lastFeed := last.At(day)
	if interval <= 0 || firstFeed.After(lastFeed) {
		return nil
	}

	var feeds []time.Time
	for t := firstFeed; !t.After(lastFeed); t = t.Add(interval) {
		feeds = append(feeds, t)
	}

	var blocks []Block
	for i, feedStart := range feeds {
		feedEnd := feedStart.Add(FeedDuration)
		blocks = append(blocks, Block{
			ID:    fmt.Sprintf("feed-%d", i),
			Type:  BlockFeeding,
			Start: feedStart,
			End:   &feedEnd,
		})

		if i == len(feeds)-1 {
			// Final feed: the day ends in open-ended night sleep,
			// no awake/nap/routine after it.
			blocks = append(blocks, Block{
				ID:    fmt.Sprintf("night-%d", i),
				Type:  BlockNightSleep,
				Start: feedEnd,
			})
			break
		}

		awakeEnd := feedEnd.Add(AwakeDuration)
		blocks = append(blocks, Block{
			ID:    fmt.Sprintf("awake-%d", i),
			Type:  BlockAwake,
			Start: feedEnd,
			End:   &awakeEnd,
		})

		napStart := awakeEnd
		napEnd := napStart.Add(NapDuration)
		nextFeed := feeds[i+1]
		penultimate := i == len(feeds)-2

		if penultimate {
			// The night routine must end exactly at the final feed; the nap
			// gives up the slot so the feed grid stays untouched.
			routineStart := nextFeed.Add(-NightRoutineDuration)
			if routineStart.After(napStart) {
				napEnd = routineStart
			}
		}
		blocks = append(blocks, Block{
			ID:    fmt.Sprintf("nap-%d", i),
			Type:  BlockNap,
			Start: napStart,
			End:   &napEnd,
		})

		if penultimate && napEnd.Before(nextFeed) {
			routineEnd := nextFeed
			blocks = append(blocks, Block{
				ID:    fmt.Sprintf("routine-%d", i),
				Type:  BlockNightRoutine,
				Start: napEnd,
				End:   &routineEnd,
			})
		}
	}

	return blocks
}

// FindActiveBlock returns the id of the block whose span contains now:
// [start, end) for bounded blocks, now >= start for the open-ended one.
// Blocks are chronologically ordered and non-overlapping by construction,
// so the first match is the only match.
func FindActiveBlock(blocks []Block, now time.Time) (string, bool) {
	for _, b := range blocks {
		if b.End != nil {
			if !now.Before(b.Start) && now.Before(*b.End) {
				return b.ID, true
			}
		} else if !now.Before(b.Start) {
			return b.ID, true
		}
	}
	return "", false
}
