package auth

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/boltdb/bolt"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

const (
	AdminUserId = "1"
)

type Login struct {
	UserId   string `json:"userId"`
	Password string `json:"password"`
}

// User is a staff account (admin, campaign manager or viewer). Portal
// sessions get a synthesized User carrying only ClientId and ClientScope.
type User struct {
	Id        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Type      Scope  `json:"type,omitempty"`
	Active    bool   `json:"active,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
	Salt      string `json:"salt,omitempty"`

	ClientId string `json:"clientId,omitempty"` // portal sessions only, never stored
}

// Trim returns a browser-safe version of the User, mainly hiding the salt.
func (u *User) Trim() *User {
	u.Salt = ""
	return u
}

// Update fills the updatable fields, Id and CreatedAt are never blindly set.
func (u *User) Update(o *User) *User {
	u.Name, u.Email = o.Name, o.Email
	if o.Type.Valid() {
		u.Type = o.Type
	}
	u.Active = o.Active
	u.UpdatedAt = time.Now().UnixNano()
	return u
}

func (u *User) Check(newUser bool) error {
	if newUser && len(u.Id) != 0 {
		return ErrInvalidUserID
	}
	if len(u.Name) < 2 {
		return ErrInvalidName
	}
	if len(u.Email) < 6 /* a@a.ab */ || strings.Index(u.Email, "@") == -1 {
		return ErrInvalidEmail
	}
	if !u.Type.Valid() {
		return ErrInvalidUserType
	}
	return nil
}

func (u *User) Store(a *Auth, tx *bolt.Tx) error {
	return misc.PutTxJson(tx, a.cfg.Bucket.User, u.Id, u)
}

func (a *Auth) CreateUserTx(tx *bolt.Tx, u *User, password string) (err error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if err = u.Check(true); err != nil {
		return
	}

	if a.GetLoginTx(tx, u.Email) != nil {
		return ErrEmailExists
	}

	u.CreatedAt = time.Now().UnixNano()
	u.UpdatedAt = u.CreatedAt
	u.Active = true
	u.Salt = hex.EncodeToString(misc.CreateToken(SaltLen))
	u.ClientId = ""

	if password, err = HashPassword(password); err != nil {
		return
	}

	if u.Id, err = misc.GetNextIndex(tx, a.cfg.Bucket.User); err != nil {
		return
	}

	if err = misc.PutTxJson(tx, a.cfg.Bucket.User, u.Id, u); err != nil {
		return
	}

	// logins are always keyed on the lowercased email
	login := &Login{
		UserId:   u.Id,
		Password: password,
	}

	return misc.PutTxJson(tx, a.cfg.Bucket.Login, misc.TrimEmail(u.Email), login)
}

func (a *Auth) DelUserTx(tx *bolt.Tx, userId string) (err error) {
	user := a.GetUserTx(tx, userId)
	if user == nil {
		return ErrInvalidUserID
	}
	misc.GetBucket(tx, a.cfg.Bucket.User).Delete([]byte(userId))
	return misc.GetBucket(tx, a.cfg.Bucket.Login).Delete([]byte(misc.TrimEmail(user.Email)))
}

func (a *Auth) GetUserTx(tx *bolt.Tx, userId string) *User {
	var u User
	if misc.GetTxJson(tx, a.cfg.Bucket.User, userId, &u) == nil && len(u.Salt) > 0 {
		return &u
	}
	return nil
}

// EnsureAdminTx seeds the configured admin account on first boot.
func (a *Auth) EnsureAdminTx(tx *bolt.Tx, name, email, pass string) error {
	if a.GetUserTx(tx, AdminUserId) != nil {
		return nil
	}
	u := &User{
		Name:  name,
		Email: email,
		Type:  AdminScope,
	}
	return a.CreateUserTx(tx, u, pass)
}
