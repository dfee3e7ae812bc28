package auth

import (
	"fmt"
	"log"
	"net/http"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/templates"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

const (
	accessRoute = "/access"
	adminRoute  = "/admin"
	portalRoute = "/portal/dashboard"
)

func (a *Auth) setCookie(w http.ResponseWriter, name, value string) {
	misc.SetCookie(w, name, value, !a.cfg.Sandbox, TokenAge)
}

func (a *Auth) clearSession(w http.ResponseWriter) {
	misc.DeleteCookie(w, "token", !a.cfg.Sandbox)
	misc.DeleteCookie(w, "key", !a.cfg.Sandbox)
}

// VerifyUser guards API routes: a missing or broken session is a 401, a
// good one is stored on the context and slid forward.
func (a *Auth) VerifyUser(c *gin.Context) {
	u, stok := a.sessionUser(c.Request)
	if u == nil {
		misc.AbortWithErr(c, 401, ErrUnauthorized)
		return
	}
	c.Set(gin.AuthUserKey, u)
	misc.RefreshCookie(c.Writer, c.Request, "token", TokenAge)
	misc.RefreshCookie(c.Writer, c.Request, "key", TokenAge)
	a.refreshToken(stok, TokenAge)
}

// CheckScopes returns a gin handler that checks user access against the provided ScopeMap
func (a *Auth) CheckScopes(sm ScopeMap) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := GetCtxUser(c); u != nil && sm.HasAccess(u.Type, c.Request.Method) {
			return
		}
		misc.AbortWithErr(c, 401, ErrUnauthorized)
	}
}

// GatePublic sits on the entry pages: an already-authenticated visitor is
// bounced straight to their area.
func (a *Auth) GatePublic(c *gin.Context) {
	if u, _ := a.sessionUser(c.Request); u != nil {
		if u.Type.IsStaff() {
			c.Redirect(302, adminRoute)
		} else {
			c.Redirect(302, portalRoute)
		}
		c.Abort()
	}
}

// GateAdmin guards the admin pages: no session goes to the access-code
// page, a client session goes to the portal.
func (a *Auth) GateAdmin(c *gin.Context) {
	u, _ := a.sessionUser(c.Request)
	switch {
	case u == nil:
		c.Redirect(302, accessRoute)
		c.Abort()
	case !u.Type.IsStaff():
		c.Redirect(302, portalRoute)
		c.Abort()
	default:
		c.Set(gin.AuthUserKey, u)
	}
}

// GatePortal guards the portal pages: no session goes to the access-code
// page, a staff session goes to the admin area.
func (a *Auth) GatePortal(c *gin.Context) {
	u, _ := a.sessionUser(c.Request)
	switch {
	case u == nil:
		c.Redirect(302, accessRoute)
		c.Abort()
	case u.Type.IsStaff():
		c.Redirect(302, adminRoute)
		c.Abort()
	default:
		c.Set(gin.AuthUserKey, u)
	}
}

func (a *Auth) SignInHandler(c *gin.Context) {
	var li struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"pass" form:"pass"`
	}
	if err := c.Bind(&li); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, err)
		return
	}
	var (
		login *Login
		stok  string
		mac   string
		err   error
	)
	a.db.Update(func(tx *bolt.Tx) (_ error) {
		login, stok, mac, err = a.SignInTx(tx, li.Email, li.Password)
		return
	})

	if err != nil {
		misc.AbortWithErr(c, 401, err)
		return
	}

	a.setCookie(c.Writer, "token", stok)
	a.setCookie(c.Writer, "key", mac)
	c.JSON(200, misc.StatusOK(login.UserId))
}

// AccessHandler is the portal's sign-in: a bare access code instead of a
// login. The code comparison trims and ignores case.
func (a *Auth) AccessHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" form:"code"`
	}
	if err := c.Bind(&req); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, err)
		return
	}
	cl, stok, mac, err := a.SignInClient(req.Code)
	if err != nil {
		misc.AbortWithErr(c, 401, err)
		return
	}

	a.setCookie(c.Writer, "token", stok)
	a.setCookie(c.Writer, "key", mac)
	c.JSON(200, misc.StatusOK(cl.Id))
}

func (a *Auth) SignOutHandler(c *gin.Context) {
	if stok, _ := getCreds(c.Request); stok != "" {
		a.db.Update(func(tx *bolt.Tx) error {
			return a.SignOutTx(tx, stok)
		})
	}
	a.clearSession(c.Writer)
	c.JSON(200, misc.StatusOK(""))
}

// SignupHandler creates staff accounts. Only an admin session gets here
// (scope-checked on the route), so the only self-service signup is none.
func (a *Auth) SignupHandler(c *gin.Context) {
	var uwp struct { // UserWithPassword
		User
		Password  string `json:"pass"`
		Password2 string `json:"pass2"`
	}
	if err := misc.BindJSON(c, &uwp); err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	if uwp.Type == "" {
		uwp.Type = ViewerScope
	}
	if uwp.Password != uwp.Password2 {
		misc.AbortWithErr(c, 400, ErrPasswordMismatch)
		return
	}
	if len(uwp.Password) < 8 {
		misc.AbortWithErr(c, 400, ErrShortPass)
		return
	}
	if err := a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, &uwp.User, uwp.Password)
	}); err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	c.JSON(200, misc.StatusOK(uwp.Id))
}

// DelUserHandler removes a staff account. The seeded admin cannot be
// deleted.
func (a *Auth) DelUserHandler(c *gin.Context) {
	id := c.Param("id")
	if id == AdminUserId {
		misc.AbortWithErr(c, 400, ErrInvalidUserID)
		return
	}
	var err error
	a.db.Update(func(tx *bolt.Tx) error {
		err = a.DelUserTx(tx, id)
		return err
	})
	if err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	c.JSON(200, misc.StatusOK(id))
}

func (a *Auth) ListUsersHandler(c *gin.Context) {
	users := make([]*User, 0, 16)
	a.db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, a.cfg.Bucket.User).ForEach(func(k, v []byte) error {
			var u User
			if misc.GetTxJson(tx, a.cfg.Bucket.User, string(k), &u) == nil {
				users = append(users, u.Trim())
			}
			return nil
		})
	})
	c.JSON(200, users)
}

const resetPasswordUrl = "%s%s/resetPassword/%s"

func (a *Auth) ReqResetHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if misc.BindJSON(c, &req) != nil || len(req.Email) == 0 {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}
	var (
		u    *User
		stok string
		err  error
	)
	a.db.Update(func(tx *bolt.Tx) error {
		u, stok, err = a.RequestResetPasswordTx(tx, req.Email)
		return nil
	})
	if err != nil {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}

	if a.ec == nil {
		log.Println("no mail client, reset url:", fmt.Sprintf(resetPasswordUrl, a.cfg.ServerURL, a.cfg.APIPath, stok))
		c.JSON(200, misc.StatusOK(""))
		return
	}

	tmplData := struct {
		Sandbox bool
		URL     string
	}{a.cfg.Sandbox, fmt.Sprintf(resetPasswordUrl, a.cfg.ServerURL, a.cfg.APIPath, stok)}

	email := templates.ResetPassword.Render(tmplData)
	if resp, err := a.ec.SendMessage(email, "Password Reset Request", req.Email, u.Name, []string{"reset password"}); err != nil || len(resp) != 1 || resp[0].RejectReason != "" {
		log.Printf("%v: %+v", err, resp)
		misc.AbortWithErr(c, 500, ErrUnexpected)
		return
	}
	c.JSON(200, misc.StatusOK(""))
}

func (a *Auth) ResetHandler(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"pass"`
		Password2 string `json:"pass2"`
	}
	if misc.BindJSON(c, &req) != nil || len(req.Email) == 0 {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}
	if req.Password != req.Password2 {
		misc.AbortWithErr(c, 400, ErrPasswordMismatch)
		return
	}
	if len(req.Password) < 8 {
		misc.AbortWithErr(c, 400, ErrShortPass)
		return
	}
	var err error
	a.db.Update(func(tx *bolt.Tx) error {
		err = a.ResetPasswordTx(tx, c.Param("token"), req.Email, req.Password)
		return nil
	})
	if err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	a.clearSession(c.Writer)
	c.JSON(200, misc.StatusOK(""))
}
