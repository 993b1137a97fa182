package roadroute

import "github.com/lintang-b-s/roadroute/pkg/datastructure"

// EdgeLookup. road network attributes of a traversed edge. a missing (u, v) must return an error wrapping ErrEdgeNotFound.
type EdgeLookup interface {
	Edge(u, v int64) (datastructure.EdgeInfo, error)
}
