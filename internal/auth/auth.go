package auth

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/boltdb/bolt"
	"github.com/missionMeteora/mandrill"

	"github.com/freetoolai/ViralCreatorAI-sub000/config"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/store"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

const (
	TokenAge = time.Hour * 6
	TokenLen = 16
	SaltLen  = 16

	purgeFrequency = time.Hour * 24
)

type Auth struct {
	db    *bolt.DB
	cfg   *config.Config
	store *store.Store

	ec *mandrill.Client
}

func New(db *bolt.DB, cfg *config.Config, st *store.Store) *Auth {
	return &Auth{
		db:    db,
		cfg:   cfg,
		store: st,
		ec:    cfg.MailClient(),
	}
}

// Token is the server-side session record and the only authority on the
// session's scope; the browser holds just the token id and its MAC.
type Token struct {
	UserId   string `json:"userId,omitempty"`
	ClientId string `json:"clientId,omitempty"`
	Email    string `json:"email,omitempty"` // reset-password tokens only
	Scope    Scope  `json:"scope,omitempty"`
	Salt     string `json:"salt,omitempty"`
	Expires  int64  `json:"expires"`
}

func (t *Token) IsValid(ts time.Time) bool {
	if t.UserId == "" && t.ClientId == "" && t.Email == "" {
		return false
	}
	return t.Expires == -1 || t.Expires > ts.UnixNano()
}

func (t *Token) Refresh(dur time.Duration) *Token {
	if t.Expires != -1 {
		t.Expires = time.Now().Add(dur).UnixNano()
	}
	return t
}

func (a *Auth) PurgeInvalidTokens() {
	freq := purgeFrequency
	if a.cfg.TokenPurge > 0 {
		freq = a.cfg.TokenPurge * time.Hour
	}
	for {
		a.db.Update(func(tx *bolt.Tx) error {
			b := misc.GetBucket(tx, a.cfg.Bucket.Token)
			ts := time.Now()
			return b.ForEach(func(k, v []byte) error {
				var tok Token
				if json.Unmarshal(v, &tok) != nil || !tok.IsValid(ts) {
					b.Delete(k)
				}
				return nil
			})
		})

		time.Sleep(freq)
	}
}

func (a *Auth) GetLoginTx(tx *bolt.Tx, email string) *Login {
	email = misc.TrimEmail(email)

	var l Login
	if misc.GetTxJson(tx, a.cfg.Bucket.Login, email, &l) == nil && l.UserId != "" {
		return &l
	}
	return nil
}

func (a *Auth) GetUserByEmailTx(tx *bolt.Tx, email string) *User {
	if l := a.GetLoginTx(tx, email); l != nil {
		return a.GetUserTx(tx, l.UserId)
	}
	return nil
}

// SignInTx checks staff credentials and mints a session token. The cookie
// MAC is keyed on the hashed password, so changing it kills open sessions.
func (a *Auth) SignInTx(tx *bolt.Tx, email, pass string) (l *Login, stok, mac string, err error) {
	if l = a.GetLoginTx(tx, email); l == nil {
		return nil, "", "", ErrInvalidEmail
	}
	if !CheckPassword(l.Password, pass) {
		return nil, "", "", ErrInvalidPass
	}
	u := a.GetUserTx(tx, l.UserId)
	if u == nil || !u.Active {
		return nil, "", "", ErrUnauthorized
	}
	stok = hex.EncodeToString(misc.CreateToken(TokenLen))
	ntok := &Token{
		UserId:  l.UserId,
		Scope:   u.Type,
		Salt:    u.Salt,
		Expires: time.Now().Add(TokenAge).UnixNano(),
	}
	if err = misc.PutTxJson(tx, a.cfg.Bucket.Token, stok, ntok); err != nil {
		return
	}
	mac = CreateMAC(l.Password, stok, u.Salt)
	return
}

// SignInClient turns a valid portal access code into a client-scoped
// session. The match is trimmed and case-insensitive.
func (a *Auth) SignInClient(code string) (cl *common.Client, stok, mac string, err error) {
	if cl = a.store.ClientByAccessCode(code); cl == nil {
		return nil, "", "", ErrInvalidCode
	}
	stok = hex.EncodeToString(misc.CreateToken(TokenLen))
	salt := hex.EncodeToString(misc.CreateToken(SaltLen))
	ntok := &Token{
		ClientId: cl.Id,
		Scope:    ClientScope,
		Salt:     salt,
		Expires:  time.Now().Add(TokenAge).UnixNano(),
	}
	err = a.db.Update(func(tx *bolt.Tx) error {
		return misc.PutTxJson(tx, a.cfg.Bucket.Token, stok, ntok)
	})
	if err != nil {
		return nil, "", "", err
	}
	mac = CreateMAC(cl.Id, stok, salt)
	return
}

func (a *Auth) SignOutTx(tx *bolt.Tx, stok string) error {
	return misc.GetBucket(tx, a.cfg.Bucket.Token).Delete([]byte(stok))
}

func (a *Auth) refreshToken(stok string, dur time.Duration) {
	a.db.Update(func(tx *bolt.Tx) (_ error) {
		var token Token
		if misc.GetTxJson(tx, a.cfg.Bucket.Token, stok, &token) != nil || !token.IsValid(time.Now()) {
			return
		}
		return misc.PutTxJson(tx, a.cfg.Bucket.Token, stok, token.Refresh(dur))
	})
}

func getCreds(req *http.Request) (token, key string) {
	return misc.GetCookie(req, "token"), misc.GetCookie(req, "key")
}

// sessionUser resolves the request's session, nil when there is none. For
// portal sessions the returned User is synthesized from the token record.
func (a *Auth) sessionUser(req *http.Request) (u *User, stok string) {
	stok, mac := getCreds(req)
	if stok == "" || mac == "" {
		return nil, ""
	}

	var (
		tok   Token
		valid bool
	)
	a.db.View(func(tx *bolt.Tx) error {
		if misc.GetTxJson(tx, a.cfg.Bucket.Token, stok, &tok) != nil || !tok.IsValid(time.Now()) {
			return nil
		}
		if tok.UserId != "" {
			user := a.GetUserTx(tx, tok.UserId)
			if user == nil || !user.Active {
				return nil
			}
			l := a.GetLoginTx(tx, user.Email)
			if l == nil || !VerifyMac(mac, l.Password, stok, user.Salt) {
				return nil
			}
			u = user
			return nil
		}
		valid = true
		return nil
	})

	if u == nil && valid && tok.Scope == ClientScope && tok.ClientId != "" {
		if !VerifyMac(mac, tok.ClientId, stok, tok.Salt) {
			return nil, ""
		}
		cl := a.store.Client(tok.ClientId)
		if cl == nil { // client was deleted mid-session
			return nil, ""
		}
		u = &User{
			Id:       "portal:" + cl.Id,
			Name:     cl.Name,
			Type:     ClientScope,
			ClientId: cl.Id,
		}
	}
	return
}
