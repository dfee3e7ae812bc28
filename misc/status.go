package misc

import "github.com/gin-gonic/gin"

// Status is the standard response envelope for mutation endpoints.
type Status struct {
	Status string `json:"status"`
	Id     string `json:"id,omitempty"`
	Msg    string `json:"msg,omitempty"`
	Code   int    `json:"code,omitempty"`
}

func StatusOK(id string) Status {
	return Status{Status: "success", Id: id}
}

func StatusErr(msg string) Status {
	return Status{Status: "error", Msg: msg}
}

func AbortWithErr(c *gin.Context, code int, err error) {
	st := StatusErr(err.Error())
	st.Code = code
	c.JSON(code, st)
	c.Abort()
}
