package server

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/templates"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

///////// Clients /////////

func getClients(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.store.Clients())
	}
}

func getClient(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := s.store.Client(c.Params.ByName("id"))
		if cl == nil {
			c.JSON(404, misc.StatusErr("client not found"))
			return
		}
		c.JSON(200, cl)
	}
}

func postClient(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cl common.Client
		if err := misc.BindJSON(c, &cl); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		id, err := s.store.AddClient(&cl)
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func putClient(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.ClientUpdate
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		id := c.Params.ByName("id")
		if err := s.store.UpdateClient(id, &upd); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func delClient(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")
		if err := s.store.DeleteClient(id); err != nil {
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

// postSendAccess emails the client their portal access code.
func postSendAccess(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := s.store.Client(c.Params.ByName("id"))
		if cl == nil {
			c.JSON(404, misc.StatusErr("client not found"))
			return
		}
		if cl.Email == "" || cl.AccessCode == "" {
			c.JSON(400, misc.StatusErr("client has no email or access code"))
			return
		}

		ec := s.Cfg.MailClient()
		if ec == nil {
			c.JSON(500, misc.StatusErr("no mail client configured"))
			return
		}

		tmplData := struct {
			Sandbox bool
			Name    string
			Code    string
			URL     string
		}{s.Cfg.Sandbox, cl.Name, cl.AccessCode, s.Cfg.ServerURL + "/access"}

		email := templates.AccessInvite.Render(tmplData)
		if resp, err := ec.SendMessage(email, "Your campaign portal access", cl.Email, cl.Name, []string{"access invite"}); err != nil || len(resp) != 1 || resp[0].RejectReason != "" {
			log.Printf("%v: %+v", err, resp)
			c.JSON(500, misc.StatusErr("failed to send access email"))
			return
		}
		c.JSON(200, misc.StatusOK(cl.Id))
	}
}
