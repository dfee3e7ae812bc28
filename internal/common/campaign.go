package common

import (
	"strings"
	"time"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "Draft"
	CampaignSent      CampaignStatus = "Sent"
	CampaignApproved  CampaignStatus = "Approved"
	CampaignRejected  CampaignStatus = "Rejected"
	CampaignActive    CampaignStatus = "Active"
	CampaignCompleted CampaignStatus = "Completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignSent, CampaignApproved, CampaignRejected, CampaignActive, CampaignCompleted:
		return true
	}
	return false
}

type RefStatus string

const (
	RefShortlisted RefStatus = "Shortlisted"
	RefPending     RefStatus = "Pending"
	RefApproved    RefStatus = "Approved"
	RefRejected    RefStatus = "Rejected"
	RefConfirmed   RefStatus = "Confirmed"
	RefPosted      RefStatus = "Posted"
)

// IsDecision reports whether the status is one a portal session may set.
func (s RefStatus) IsDecision() bool {
	return s == RefApproved || s == RefRejected
}

func (s RefStatus) Valid() bool {
	switch s {
	case RefShortlisted, RefPending, RefApproved, RefRejected, RefConfirmed, RefPosted:
		return true
	}
	return false
}

// CampaignInfluencerRef links one influencer to one campaign with
// campaign-specific fee and approval fields. Profit is always derived from
// the two fees, never stored.
type CampaignInfluencerRef struct {
	InfluencerId string    `json:"influencerId"`
	Status       RefStatus `json:"status,omitempty"`

	InfluencerFee float64 `json:"influencerFee,omitempty"`
	ClientFee     float64 `json:"clientFee,omitempty"`

	Deliverables  string `json:"deliverables,omitempty"`
	ProductAccess string `json:"productAccess,omitempty"`
	PlannedDate   string `json:"plannedDate,omitempty"`
	DraftLink     string `json:"draftLink,omitempty"`
	PostLink      string `json:"postLink,omitempty"`

	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// RefUpdate is a partial-field merge for a roster ref.
type RefUpdate struct {
	Status        *RefStatus `json:"status,omitempty"`
	InfluencerFee *float64   `json:"influencerFee,omitempty"`
	ClientFee     *float64   `json:"clientFee,omitempty"`
	Deliverables  *string    `json:"deliverables,omitempty"`
	ProductAccess *string    `json:"productAccess,omitempty"`
	PlannedDate   *string    `json:"plannedDate,omitempty"`
	DraftLink     *string    `json:"draftLink,omitempty"`
	PostLink      *string    `json:"postLink,omitempty"`
}

func (ref *CampaignInfluencerRef) Apply(u *RefUpdate) error {
	if u.Status != nil {
		if !u.Status.Valid() {
			return ErrBadStatus
		}
		ref.Status = *u.Status
	}
	if u.InfluencerFee != nil {
		ref.InfluencerFee = misc.Sanitize(*u.InfluencerFee)
	}
	if u.ClientFee != nil {
		ref.ClientFee = misc.Sanitize(*u.ClientFee)
	}
	if u.Deliverables != nil {
		ref.Deliverables = *u.Deliverables
	}
	if u.ProductAccess != nil {
		ref.ProductAccess = *u.ProductAccess
	}
	if u.PlannedDate != nil {
		ref.PlannedDate = *u.PlannedDate
	}
	if u.DraftLink != nil {
		ref.DraftLink = *u.DraftLink
	}
	if u.PostLink != nil {
		ref.PostLink = *u.PostLink
	}
	ref.UpdatedAt = time.Now().UnixNano()
	return nil
}

type Campaign struct {
	Id       string `json:"id"`
	ClientId string `json:"clientId"`
	Title    string `json:"title"`

	Status      CampaignStatus `json:"status,omitempty"`
	TotalBudget float64        `json:"totalBudget,omitempty"`

	PlatformFocus  []string `json:"platformFocus,omitempty"`
	RequiredNiches []string `json:"requiredNiches,omitempty"`

	// The roster. One ref per influencer, enforced by the add operation.
	Influencers []*CampaignInfluencerRef `json:"influencers,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
}

func (cmp *Campaign) Sanitize() *Campaign {
	cmp.Title = strings.TrimSpace(cmp.Title)
	cmp.PlatformFocus = LowerSlice(cmp.PlatformFocus)
	cmp.RequiredNiches = LowerSlice(cmp.RequiredNiches)
	cmp.TotalBudget = misc.Sanitize(cmp.TotalBudget)
	return cmp
}

func (cmp *Campaign) Check() error {
	if cmp.Title == "" {
		return ErrNoTitle
	}
	if cmp.ClientId == "" {
		return ErrNoClient
	}
	if cmp.Status != "" && !cmp.Status.Valid() {
		return ErrBadStatus
	}
	return nil
}

// Clone returns a copy sharing no mutable state with the receiver, roster
// refs included.
func (cmp *Campaign) Clone() *Campaign {
	out := *cmp
	out.PlatformFocus = append([]string(nil), cmp.PlatformFocus...)
	out.RequiredNiches = append([]string(nil), cmp.RequiredNiches...)
	if cmp.Influencers != nil {
		out.Influencers = make([]*CampaignInfluencerRef, len(cmp.Influencers))
		for i, ref := range cmp.Influencers {
			cp := *ref
			out.Influencers[i] = &cp
		}
	}
	return &out
}

// Ref returns the roster entry for the given influencer, nil if absent.
func (cmp *Campaign) Ref(influencerId string) *CampaignInfluencerRef {
	for _, ref := range cmp.Influencers {
		if ref.InfluencerId == influencerId {
			return ref
		}
	}
	return nil
}

// Financials is the per-campaign roll-up. TotalProfit is always the exact
// difference of the other two.
type Financials struct {
	TotalPayout  float64 `json:"totalPayout"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalProfit  float64 `json:"totalProfit"`
}

// Fold sums the roster fees. Unset fees contribute 0.
func (cmp *Campaign) Fold() (fin Financials) {
	for _, ref := range cmp.Influencers {
		fin.TotalPayout += misc.Sanitize(ref.InfluencerFee)
		fin.TotalRevenue += misc.Sanitize(ref.ClientFee)
	}
	fin.TotalProfit = fin.TotalRevenue - fin.TotalPayout
	return
}

type CampaignUpdate struct {
	ClientId       *string         `json:"clientId,omitempty"`
	Title          *string         `json:"title,omitempty"`
	Status         *CampaignStatus `json:"status,omitempty"`
	TotalBudget    *float64        `json:"totalBudget,omitempty"`
	PlatformFocus  *[]string       `json:"platformFocus,omitempty"`
	RequiredNiches *[]string       `json:"requiredNiches,omitempty"`
}

func (cmp *Campaign) Apply(u *CampaignUpdate) error {
	if u.Status != nil && !u.Status.Valid() {
		return ErrBadStatus
	}
	if u.ClientId != nil {
		cmp.ClientId = *u.ClientId
	}
	if u.Title != nil {
		cmp.Title = *u.Title
	}
	if u.Status != nil {
		cmp.Status = *u.Status
	}
	if u.TotalBudget != nil {
		cmp.TotalBudget = *u.TotalBudget
	}
	if u.PlatformFocus != nil {
		cmp.PlatformFocus = *u.PlatformFocus
	}
	if u.RequiredNiches != nil {
		cmp.RequiredNiches = *u.RequiredNiches
	}
	cmp.Sanitize()
	return nil
}
