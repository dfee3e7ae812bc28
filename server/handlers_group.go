package server

import (
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

///////// Groups /////////

func getGroups(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var out []*common.Group
		if clientId := c.Query("client"); clientId != "" {
			out = s.store.GroupsByClient(clientId)
		} else {
			out = s.store.Groups()
		}
		if out == nil {
			out = []*common.Group{}
		}
		c.JSON(200, out)
	}
}

func postGroup(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var g common.Group
		if err := misc.BindJSON(c, &g); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if s.store.Client(g.ClientId) == nil {
			c.JSON(400, misc.StatusErr(common.ErrNoClient.Error()))
			return
		}
		id, err := s.store.AddGroup(&g)
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func putGroup(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.GroupUpdate
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		id := c.Params.ByName("id")
		if err := s.store.UpdateGroup(id, &upd); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func delGroup(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")
		if err := s.store.DeleteGroup(id); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}
