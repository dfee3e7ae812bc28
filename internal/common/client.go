package common

import (
	"strings"

	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// Client is a brand the agency runs campaigns for. The access code is the
// sole portal credential.
type Client struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	AccessCode  string `json:"accessCode,omitempty"`
}

// CodeMatches compares portal access codes case-insensitively, ignoring
// surrounding whitespace on the candidate.
func (cl *Client) CodeMatches(code string) bool {
	return cl.AccessCode != "" && strings.EqualFold(strings.TrimSpace(code), strings.TrimSpace(cl.AccessCode))
}

func (cl *Client) Sanitize() *Client {
	cl.Name = strings.TrimSpace(cl.Name)
	cl.Email = misc.TrimEmail(cl.Email)
	cl.CompanyName = strings.TrimSpace(cl.CompanyName)
	cl.AccessCode = strings.TrimSpace(cl.AccessCode)
	return cl
}

func (cl *Client) Check() error {
	if cl.Name == "" {
		return ErrNoName
	}
	return nil
}

// Clone returns a copy sharing no mutable state with the receiver.
func (cl *Client) Clone() *Client {
	out := *cl
	return &out
}

type ClientUpdate struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	AccessCode  *string `json:"accessCode,omitempty"`
}

func (cl *Client) Apply(u *ClientUpdate) *Client {
	if u.Name != nil {
		cl.Name = *u.Name
	}
	if u.Email != nil {
		cl.Email = *u.Email
	}
	if u.CompanyName != nil {
		cl.CompanyName = *u.CompanyName
	}
	if u.AccessCode != nil {
		cl.AccessCode = *u.AccessCode
	}
	return cl.Sanitize()
}
