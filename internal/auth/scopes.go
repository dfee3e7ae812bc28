package auth

// Scope is the single authority on what a session may touch; it lives in
// the server-side token record, never in anything the browser controls.
type Scope string

const (
	AllScopes Scope = `*` // special catch-all case for matching

	InvalidScope Scope = ""
	AdminScope   Scope = `admin`
	ManagerScope Scope = `manager` // campaign manager
	ViewerScope  Scope = `viewer`
	ClientScope  Scope = `client` // portal session, access-code based
)

func (s Scope) IsOneOf(os ...Scope) bool {
	for _, o := range os {
		if s == o {
			return true
		}
	}
	return false
}

// Valid reports whether the scope names a staff role that can be stored on
// a user record; client sessions have no user record.
func (s Scope) Valid() bool {
	switch s {
	case AdminScope, ManagerScope, ViewerScope:
		return true
	}
	return false
}

// IsStaff reports whether the scope belongs in the admin area.
func (s Scope) IsStaff() bool {
	return s.IsOneOf(AdminScope, ManagerScope, ViewerScope)
}

type ScopeMap map[Scope]struct{ Get, Put, Post, Delete bool }

func (sm ScopeMap) HasAccess(scope Scope, method string) bool {
	if scope == AdminScope {
		return true
	} else if sm == nil {
		return false
	}

	var v bool
	if m, ok := sm[scope]; ok {
		switch method {
		case "HEAD", "GET":
			v = m.Get
		case "PUT":
			v = m.Put
		case "POST":
			v = m.Post
		case "DELETE":
			v = m.Delete
		}
	}
	if !v && scope != AllScopes {
		v = sm.HasAccess(AllScopes, method)
	}
	return v
}
