package common

import "strings"

// Group is a pure view construct bundling campaigns for one client.
type Group struct {
	Id          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClientId    string `json:"clientId"`

	CampaignIds []string `json:"campaignIds,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
}

func (g *Group) Sanitize() *Group {
	g.Title = strings.TrimSpace(g.Title)
	return g
}

func (g *Group) Check() error {
	if g.Title == "" {
		return ErrNoTitle
	}
	if g.ClientId == "" {
		return ErrNoClient
	}
	return nil
}

// Clone returns a copy sharing no mutable state with the receiver.
func (g *Group) Clone() *Group {
	out := *g
	out.CampaignIds = append([]string(nil), g.CampaignIds...)
	return &out
}

type GroupUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ClientId    *string   `json:"clientId,omitempty"`
	CampaignIds *[]string `json:"campaignIds,omitempty"`
}

func (g *Group) Apply(u *GroupUpdate) *Group {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.ClientId != nil {
		g.ClientId = *u.ClientId
	}
	if u.CampaignIds != nil {
		g.CampaignIds = *u.CampaignIds
	}
	return g.Sanitize()
}
