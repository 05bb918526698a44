package plan

import (
	"sort"
	"strings"
)

// LoadRating labels for a day's summed intensity scores.
const (
	RatingRecovery = "Recovery"
	RatingBuild    = "Build"
	RatingLoad     = "Load"
)

// DayGroup is one day's bucket in the week view.
type DayGroup struct {
	Day      Day       `json:"day"`
	Sessions []Session `json:"sessions"`
	Rating   string    `json:"rating"`
}

// GroupByDay partitions sessions into the seven day buckets, Monday first.
// Every day is present even when empty; each bucket is sorted ascending by
// start time (string comparison is correct for zero-padded 24h times).
// Each bucket also carries the day's load rating.
func GroupByDay(sessions []Session) []DayGroup {
	groups := make([]DayGroup, len(Days))
	for i, day := range Days {
		groups[i] = DayGroup{Day: day, Sessions: []Session{}}
	}
	for _, sess := range sessions {
		if i := sess.Day.Index(); i >= 0 {
			groups[i].Sessions = append(groups[i].Sessions, sess)
		}
	}
	for i := range groups {
		bucket := groups[i].Sessions
		sort.SliceStable(bucket, func(a, b int) bool {
			return strings.Compare(bucket[a].Start, bucket[b].Start) < 0
		})
		groups[i].Rating = LoadRating(bucket)
	}
	return groups
}

// FocusHistogram counts sessions per focus label.
func FocusHistogram(sessions []Session) map[string]int {
	hist := make(map[string]int, len(sessions))
	for _, sess := range sessions {
		hist[sess.Focus]++
	}
	return hist
}

// NextSession returns the chronologically soonest session under a fixed
// Monday-start week ordering, breaking ties by start-time string. Returns
// nil for an empty plan. The ordering is deliberately not anchored to the
// real current date.
func NextSession(sessions []Session) *Session {
	var best *Session
	for i := range sessions {
		sess := &sessions[i]
		if best == nil || sooner(sess, best) {
			best = sess
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

func sooner(a, b *Session) bool {
	ai, bi := a.Day.Index(), b.Day.Index()
	if ai != bi {
		return ai < bi
	}
	return strings.Compare(a.Start, b.Start) < 0
}

// LoadRating sums the intensity scores of one day's sessions and maps the
// total to a qualitative label: 0 is Recovery, 4 or more is Load,
// anything between is Build.
func LoadRating(sessions []Session) string {
	score := 0
	for _, sess := range sessions {
		score += sess.Intensity.Score()
	}
	switch {
	case score == 0:
		return RatingRecovery
	case score >= 4:
		return RatingLoad
	}
	return RatingBuild
}

// Summary is the aggregate view over the whole plan.
type Summary struct {
	SessionCount int            `json:"session_count"`
	FocusCounts  map[string]int `json:"focus_counts"`
	NextSession  *Session       `json:"next_session"`
}

// Summarize builds the aggregate summary for the given sessions.
func Summarize(sessions []Session) Summary {
	return Summary{
		SessionCount: len(sessions),
		FocusCounts:  FocusHistogram(sessions),
		NextSession:  NextSession(sessions),
	}
}
