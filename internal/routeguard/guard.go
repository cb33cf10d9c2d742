// Package routeguard decides, before every navigation, whether the
// requested target may render for the current session. Evaluation is
// synchronous and pure: a decision is either an allow or a redirect,
// never an error.
package routeguard

import (
	"net/url"
	"strings"

	"github.com/swipeschedule/ss_backendl/models"
)

// Session is the read-only view of the session the guard needs.
type Session interface {
	IsAuthenticated() bool
	Role() models.Role
}

// Decision is the outcome of evaluating a navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Meta is the access metadata aggregated over a matched route chain:
// boolean OR of the flags, union of the role sets.
type Meta struct {
	RequiresAuth bool
	GuestOnly    bool
	Roles        []models.Role
}

type Guard struct {
	routes []Route
}

func New() *Guard {
	return NewWithRoutes(DefaultRoutes())
}

func NewWithRoutes(routes []Route) *Guard {
	return &Guard{routes: routes}
}

// Evaluate gates a navigation to target (a path, optionally with a query
// string) against the current session.
func (g *Guard) Evaluate(target string, sess Session) Decision {
	path := target
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	chain := g.match(path)
	meta := foldMeta(chain)
	authed := sess.IsAuthenticated()

	// 1) Logged-in users shouldn't see guest-only screens.
	if meta.GuestOnly && authed {
		return Decision{RedirectTo: HomeFor(sess.Role())}
	}

	// 2) Protected targets require auth; keep the requested target so
	// login can return to it.
	if meta.RequiresAuth && !authed {
		return Decision{RedirectTo: LoginPath + "?redirect=" + url.QueryEscape(target)}
	}

	// 3) Role-gated targets send a mismatched role to its own home.
	if meta.RequiresAuth && len(meta.Roles) > 0 && sess.Role() != "" && !roleIn(meta.Roles, sess.Role()) {
		return Decision{RedirectTo: HomeFor(sess.Role())}
	}

	return Decision{Allow: true}
}

// HomeFor picks the landing page for a role. Anything that is not
// business lands on the worker home.
func HomeFor(role models.Role) string {
	if role == models.RoleBusiness {
		return BusinessHome
	}
	return WorkerHome
}

// match walks the table consuming path segments and returns the chain of
// matched ancestors, or nil when no route covers the path.
func (g *Guard) match(path string) []*Route {
	return matchRoutes(g.routes, splitPath(path))
}

func matchRoutes(routes []Route, segs []string) []*Route {
	for i := range routes {
		r := &routes[i]
		own := splitPath(r.Path)
		if len(own) > len(segs) || !segmentsEqual(own, segs[:len(own)]) {
			continue
		}
		rest := segs[len(own):]
		if len(rest) == 0 {
			return []*Route{r}
		}
		if sub := matchRoutes(r.Children, rest); sub != nil {
			return append([]*Route{r}, sub...)
		}
	}
	return nil
}

func foldMeta(chain []*Route) Meta {
	var meta Meta
	for _, r := range chain {
		meta.RequiresAuth = meta.RequiresAuth || r.RequiresAuth
		meta.GuestOnly = meta.GuestOnly || r.GuestOnly
		for _, role := range r.Roles {
			if !roleIn(meta.Roles, role) {
				meta.Roles = append(meta.Roles, role)
			}
		}
	}
	return meta
}

func roleIn(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func segmentsEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
