// Package guard decides which dashboard view may render for a session.
package guard

// Locations known to the dashboard.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Decision is the outcome of resolving a location. Exactly one of Render and
// RedirectTo is set.
type Decision struct {
	Render     bool
	RedirectTo string
}

var protected = map[string]bool{
	PathDashboard: true,
}

// Protected reports whether location requires a session.
func Protected(location string) bool {
	return protected[location]
}

// Resolve decides what to show at location. Protected views never render
// without a session. Unknown locations render so the view can show its
// not-found page.
func Resolve(location string, authenticated bool) Decision {
	switch {
	case location == PathRoot && authenticated:
		return Decision{RedirectTo: PathDashboard}
	case location == PathRoot:
		return Decision{RedirectTo: PathLogin}
	case location == PathLogin && authenticated:
		return Decision{RedirectTo: PathDashboard}
	case Protected(location) && !authenticated:
		return Decision{RedirectTo: PathLogin}
	default:
		return Decision{Render: true}
	}
}

type authState interface {
	IsAuthenticated() bool
}

// Guard resolves locations against a live session.
type Guard struct {
	session authState
}

// New creates a Guard reading from s, usually a *session.Store.
func New(s authState) *Guard {
	return &Guard{session: s}
}

// Check resolves location for the current session state.
func (g *Guard) Check(location string) Decision {
	return Resolve(location, g.session.IsAuthenticated())
}

// Follow applies Check until a location renders and returns that location.
// Redirect chains are at most two hops long.
func (g *Guard) Follow(location string) string {
	for i := 0; i < 3; i++ {
		d := g.Check(location)
		if d.Render {
			return location
		}
		location = d.RedirectTo
	}
	return location
}
