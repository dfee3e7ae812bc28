package server

import (
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/auth"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

///////// Portal /////////

// clientCampaign loads a campaign only if it belongs to the session's
// client; anything else reads as not-found.
func clientCampaign(s *Server, c *gin.Context) *common.Campaign {
	u := auth.GetCtxUser(c)
	if u == nil || u.ClientId == "" {
		return nil
	}
	cmp := s.store.Campaign(c.Params.ByName("id"))
	if cmp == nil || cmp.ClientId != u.ClientId {
		return nil
	}
	return cmp
}

func portalCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.GetCtxUser(c)
		out := s.store.CampaignsByClient(u.ClientId)
		if out == nil {
			out = []*common.Campaign{}
		}
		c.JSON(200, out)
	}
}

func portalCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmp := clientCampaign(s, c)
		if cmp == nil {
			c.JSON(404, misc.StatusErr("campaign not found"))
			return
		}
		c.JSON(200, cmp)
	}
}

// portalFinancials exposes only the client-facing side of the roll-up; the
// agency's payout and margin stay internal.
func portalFinancials(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmp := clientCampaign(s, c)
		if cmp == nil {
			c.JSON(404, misc.StatusErr("campaign not found"))
			return
		}
		fin := cmp.Fold()
		c.JSON(200, gin.H{"total": fin.TotalRevenue})
	}
}

// portalDecision lets the client approve or reject a proposed creator;
// those are the only two statuses a portal session may set.
func portalDecision(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status common.RefStatus `json:"status"`
		}
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if !req.Status.IsDecision() {
			c.JSON(400, misc.StatusErr(common.ErrBadStatus.Error()))
			return
		}

		cmp := clientCampaign(s, c)
		if cmp == nil {
			c.JSON(404, misc.StatusErr("campaign not found"))
			return
		}
		infId := c.Params.ByName("infId")
		if cmp.Ref(infId) == nil {
			c.JSON(404, misc.StatusErr("influencer not on this campaign"))
			return
		}

		if err := s.store.UpdateInfluencerInCampaign(cmp.Id, infId, &common.RefUpdate{Status: &req.Status}); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(cmp.Id))
	}
}
