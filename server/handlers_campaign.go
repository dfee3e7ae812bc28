package server

import (
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

///////// Campaigns /////////

func getCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var out []*common.Campaign
		if clientId := c.Query("client"); clientId != "" {
			out = s.store.CampaignsByClient(clientId)
		} else {
			out = s.store.Campaigns()
		}
		if out == nil {
			out = []*common.Campaign{}
		}
		c.JSON(200, out)
	}
}

func getCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmp := s.store.Campaign(c.Params.ByName("id"))
		if cmp == nil {
			c.JSON(404, misc.StatusErr("campaign not found"))
			return
		}
		c.JSON(200, cmp)
	}
}

func postCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmp common.Campaign
		if err := misc.BindJSON(c, &cmp); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if s.store.Client(cmp.ClientId) == nil {
			c.JSON(400, misc.StatusErr(common.ErrNoClient.Error()))
			return
		}
		id, err := s.store.AddCampaign(&cmp)
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func putCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.CampaignUpdate
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if upd.ClientId != nil && s.store.Client(*upd.ClientId) == nil {
			c.JSON(400, misc.StatusErr(common.ErrNoClient.Error()))
			return
		}
		id := c.Params.ByName("id")
		if err := s.store.UpdateCampaign(id, &upd); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func delCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")
		if err := s.store.DeleteCampaign(id); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func getCampaignFinancials(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.store.CampaignFinancials(c.Params.ByName("id")))
	}
}

///////// Roster /////////

func postCampaignInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmpId, infId := c.Params.ByName("id"), c.Params.ByName("infId")
		if err := s.store.AddInfluencerToCampaign(cmpId, infId); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(cmpId))
	}
}

func putCampaignInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.RefUpdate
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		cmpId, infId := c.Params.ByName("id"), c.Params.ByName("infId")
		if err := s.store.UpdateInfluencerInCampaign(cmpId, infId, &upd); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(cmpId))
	}
}

func delCampaignInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmpId, infId := c.Params.ByName("id"), c.Params.ByName("infId")
		if err := s.store.RemoveInfluencerFromCampaign(cmpId, infId); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(cmpId))
	}
}
