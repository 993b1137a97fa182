package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup. httprouter routes sharing a path prefix.
type RouteGroup struct {
	r *httprouter.Router
	p string
}

func NewRouteGroup(r *httprouter.Router, p string) *RouteGroup {
	return &RouteGroup{r: r, p: p}
}

func (g *RouteGroup) Group(p string) *RouteGroup {
	return &RouteGroup{r: g.r, p: g.subPath(p)}
}

func (g *RouteGroup) GET(p string, h httprouter.Handle) {
	g.r.GET(g.subPath(p), h)
}

func (g *RouteGroup) POST(p string, h httprouter.Handle) {
	g.r.POST(g.subPath(p), h)
}

func (g *RouteGroup) Handle(method, p string, h httprouter.Handle) {
	g.r.Handle(method, g.subPath(p), h)
}

func (g *RouteGroup) Handler(method, p string, h http.Handler) {
	g.r.Handler(method, g.subPath(p), h)
}

func (g *RouteGroup) subPath(p string) string {
	result := path.Join(g.p, p)
	// path.Join drops the trailing slash
	if p != "" && p[len(p)-1] == '/' && result[len(result)-1] != '/' {
		return result + "/"
	}
	return result
}
