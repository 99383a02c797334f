package view

// Route identifies a navigable view of the client.
type Route string

const (
	RouteHome          Route = "/"
	RouteLogin         Route = "/login"
	RouteRegister      Route = "/register"
	RouteSessions      Route = "/sessions"
	RouteSessionDetail Route = "/sessions/detail"
	RouteSessionCreate Route = "/sessions/create"
	RouteSessionUpdate Route = "/sessions/update"
	RouteMe            Route = "/me"
	RouteNotFound      Route = "/404"
)
