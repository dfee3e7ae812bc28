package server

import (
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/store"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

///////// Influencers /////////

func getInfluencers(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := &store.InfluencerFilter{
			Tier:          common.Tier(c.Query("tier")),
			Niche:         c.Query("niche"),
			Platform:      c.Query("platform"),
			Query:         c.Query("q"),
			SortFollowers: c.Query("sort") == "followers",
		}
		out := s.store.FindInfluencers(f)
		if out == nil {
			out = []*common.Influencer{}
		}
		c.JSON(200, out)
	}
}

func getInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		inf := s.store.Influencer(c.Params.ByName("id"))
		if inf == nil {
			c.JSON(404, misc.StatusErr("influencer not found"))
			return
		}
		c.JSON(200, inf)
	}
}

func postInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inf common.Influencer
		if err := misc.BindJSON(c, &inf); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		id, err := s.store.AddInfluencer(&inf)
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func putInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.InfluencerUpdate
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		id := c.Params.ByName("id")
		if err := s.store.UpdateInfluencer(id, &upd); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func delInfluencer(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")
		if err := s.store.DeleteInfluencer(id); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}
