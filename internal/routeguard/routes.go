package routeguard

import "github.com/swipeschedule/ss_backendl/models"

// Route describes one navigation target. Path is relative to the parent
// route; access metadata declared on an ancestor applies to the whole
// subtree via the fold in Evaluate. The table is built once and never
// mutated at runtime.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	GuestOnly    bool
	Roles        []models.Role
	Children     []Route
}

// Role-appropriate landing pages.
const (
	BusinessHome = "/b/home"
	WorkerHome   = "/w/home"
	LoginPath    = "/login"
)

// DefaultRoutes mirrors the client's navigation tree: guest screens at
// the top level, one gated subtree per role.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Name: "splash", GuestOnly: true},
		{Path: "/login", Name: "login", GuestOnly: true},
		{Path: "/signup", Name: "signup", GuestOnly: true},
		{Path: "/signup-form", Name: "signupForm", GuestOnly: true},
		{
			Path:         "/b",
			RequiresAuth: true,
			Roles:        []models.Role{models.RoleBusiness},
			Children: []Route{
				{Path: "home", Name: "b.home"},
				{
					Path: "shifts",
					Name: "b.shifts",
					Children: []Route{
						{Path: "source", Name: "b.schedule.source"},
						{Path: "month", Name: "b.schedule.month"},
					},
				},
				{Path: "new", Name: "b.new"},
				{Path: "reports", Name: "b.reports"},
				{Path: "notifications", Name: "b.notifications"},
			},
		},
		{
			Path:         "/w",
			RequiresAuth: true,
			Roles:        []models.Role{models.RoleWorker},
			Children: []Route{
				{Path: "home", Name: "w.home"},
				{Path: "shifts", Name: "w.shifts"},
				{Path: "new", Name: "w.new"},
				{Path: "reports", Name: "w.reports"},
				{Path: "notifications", Name: "w.notifications"},
			},
		},
	}
}
