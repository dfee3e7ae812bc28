package server

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// postSync replays the legacy buckets through the store. One shot,
// best effort; the report carries whatever went wrong per record.
func postSync(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := s.store.MigrateLegacy()
		if err != nil {
			log.Println("legacy sync failed", err)
			c.JSON(500, misc.StatusErr(err.Error()))
			return
		}
		c.JSON(200, rep)
	}
}
