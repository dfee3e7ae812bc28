package store

import (
	"sort"
	"strings"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// InfluencerFilter narrows the talent list; zero values match everything.
type InfluencerFilter struct {
	Tier     common.Tier
	Niche    string
	Platform string
	Query    string // free text over name and handles

	SortFollowers bool // largest total reach first
}

func (f *InfluencerFilter) matches(inf *common.Influencer) bool {
	if f.Tier != "" && inf.Tier != f.Tier {
		return false
	}
	if f.Niche != "" && !misc.DoesIntersect([]string{f.Niche}, inf.Niches()) {
		return false
	}
	if f.Platform != "" {
		var found bool
		for i := range inf.Platforms {
			if strings.EqualFold(inf.Platforms[i].Platform, f.Platform) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if strings.Contains(strings.ToLower(inf.Name), q) {
			return true
		}
		for i := range inf.Platforms {
			if strings.Contains(strings.ToLower(inf.Platforms[i].Handle), q) {
				return true
			}
		}
		return false
	}
	return true
}

// FindInfluencers scans the talent list against the filter, keeping list
// order unless a sort was asked for.
func (s *Store) FindInfluencers(f *InfluencerFilter) []*common.Influencer {
	s.mux.RLock()
	var out []*common.Influencer
	for _, inf := range s.snap.Influencers {
		if f == nil || f.matches(inf) {
			out = append(out, inf)
		}
	}
	s.mux.RUnlock()

	if f != nil && f.SortFollowers {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Followers() > out[j].Followers()
		})
	}
	return out
}
