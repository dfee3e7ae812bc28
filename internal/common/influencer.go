package common

import (
	"strings"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// Tier is the coarse audience-size classification used for filtering and
// default fee expectations.
type Tier string

const (
	TierNano  Tier = "Nano"
	TierMicro Tier = "Micro"
	TierMid   Tier = "Mid-Tier"
	TierMacro Tier = "Macro"
	TierMega  Tier = "Mega"
)

func (t Tier) Valid() bool {
	switch t {
	case TierNano, TierMicro, TierMid, TierMacro, TierMega:
		return true
	}
	return false
}

const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
)

func ValidPlatform(p string) bool {
	switch strings.ToLower(p) {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformTwitter, PlatformFacebook:
		return true
	}
	return false
}

// SocialProfile is embedded in an Influencer and has no identity of its own.
type SocialProfile struct {
	Platform       string  `json:"platform"`
	Handle         string  `json:"handle"`
	Link           string  `json:"link,omitempty"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagementRate,omitempty"`
	AvgViews       float64 `json:"avgViews,omitempty"`
	Price          float64 `json:"price,omitempty"`
}

type Influencer struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`

	Tier            Tier     `json:"tier,omitempty"`
	PrimaryNiche    string   `json:"primaryNiche,omitempty"`
	SecondaryNiches []string `json:"secondaryNiches,omitempty"`

	// Ordered; the first profile is treated as the primary one.
	Platforms []SocialProfile `json:"platforms,omitempty"`

	TypicalPayout float64 `json:"typicalPayout,omitempty"`
	TypicalCharge float64 `json:"typicalCharge,omitempty"`
}

// Primary returns the influencer's primary social profile, if any.
func (inf *Influencer) Primary() *SocialProfile {
	if len(inf.Platforms) == 0 {
		return nil
	}
	return &inf.Platforms[0]
}

func (inf *Influencer) Followers() int64 {
	var total int64
	for i := range inf.Platforms {
		total += inf.Platforms[i].Followers
	}
	return total
}

func (inf *Influencer) Niches() []string {
	out := make([]string, 0, len(inf.SecondaryNiches)+1)
	if inf.PrimaryNiche != "" {
		out = append(out, inf.PrimaryNiche)
	}
	return append(out, inf.SecondaryNiches...)
}

func (inf *Influencer) Sanitize() *Influencer {
	inf.Name = strings.TrimSpace(inf.Name)
	inf.Email = misc.TrimEmail(inf.Email)
	for i := range inf.Platforms {
		p := &inf.Platforms[i]
		p.Platform = strings.ToLower(strings.TrimSpace(p.Platform))
		p.Handle = strings.TrimPrefix(strings.TrimSpace(p.Handle), "@")
	}
	inf.TypicalPayout = misc.Sanitize(inf.TypicalPayout)
	inf.TypicalCharge = misc.Sanitize(inf.TypicalCharge)
	return inf
}

func (inf *Influencer) Check() error {
	if inf.Name == "" {
		return ErrNoName
	}
	if inf.Tier != "" && !inf.Tier.Valid() {
		return ErrBadTier
	}
	for i := range inf.Platforms {
		if !ValidPlatform(inf.Platforms[i].Platform) {
			return ErrBadPlatform
		}
	}
	return nil
}

// InfluencerUpdate carries a partial-field merge; nil means leave as-is.
type InfluencerUpdate struct {
	Name            *string          `json:"name,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Tier            *Tier            `json:"tier,omitempty"`
	PrimaryNiche    *string          `json:"primaryNiche,omitempty"`
	SecondaryNiches *[]string        `json:"secondaryNiches,omitempty"`
	Platforms       *[]SocialProfile `json:"platforms,omitempty"`
	TypicalPayout   *float64         `json:"typicalPayout,omitempty"`
	TypicalCharge   *float64         `json:"typicalCharge,omitempty"`
}

func (inf *Influencer) Apply(u *InfluencerUpdate) error {
	if u.Tier != nil && *u.Tier != "" && !u.Tier.Valid() {
		return ErrBadTier
	}
	if u.Platforms != nil {
		for i := range *u.Platforms {
			if !ValidPlatform((*u.Platforms)[i].Platform) {
				return ErrBadPlatform
			}
		}
	}
	if u.Name != nil {
		inf.Name = *u.Name
	}
	if u.Email != nil {
		inf.Email = *u.Email
	}
	if u.Tier != nil {
		inf.Tier = *u.Tier
	}
	if u.PrimaryNiche != nil {
		inf.PrimaryNiche = *u.PrimaryNiche
	}
	if u.SecondaryNiches != nil {
		inf.SecondaryNiches = *u.SecondaryNiches
	}
	if u.Platforms != nil {
		inf.Platforms = *u.Platforms
	}
	if u.TypicalPayout != nil {
		inf.TypicalPayout = *u.TypicalPayout
	}
	if u.TypicalCharge != nil {
		inf.TypicalCharge = *u.TypicalCharge
	}
	inf.Sanitize()
	return nil
}

// Clone returns a copy sharing no mutable state with the receiver.
func (inf *Influencer) Clone() *Influencer {
	out := *inf
	out.SecondaryNiches = append([]string(nil), inf.SecondaryNiches...)
	out.Platforms = append([]SocialProfile(nil), inf.Platforms...)
	return &out
}
