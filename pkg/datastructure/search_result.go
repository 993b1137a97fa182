package datastructure

import (
	"encoding/json"
	"fmt"
)

// SearchResult. output of the shortest path search between two coordinates, consumed read only.
type SearchResult struct {
	// node ids traversed, in order
	Nodes []int64 `json:"nodes"`
	// partial geometry of the first edge when the origin lies mid edge
	Begin OptionalSegment `json:"begin"`
	// partial geometry of the last edge when the destination lies mid edge
	End OptionalSegment `json:"end"`
	// cost/time data of the search, passed through unmodified
	Cost json.RawMessage `json:"cost,omitempty"`
}

func NewSearchResult(nodes []int64, begin, end OptionalSegment, cost json.RawMessage) SearchResult {
	return SearchResult{
		Nodes: nodes,
		Begin: begin,
		End:   end,
		Cost:  cost,
	}
}

// NodePair. one traversed edge (u, v).
type NodePair struct {
	U, V int64
}

func (p NodePair) String() string {
	return fmt.Sprintf("(%d, %d)", p.U, p.V)
}

// Edges. consecutive node pairs of the traversal. nil when fewer than two nodes were traversed.
func (r SearchResult) Edges() []NodePair {
	if len(r.Nodes) < 2 {
		return nil
	}
	pairs := make([]NodePair, 0, len(r.Nodes)-1)
	for i := 0; i+1 < len(r.Nodes); i++ {
		pairs = append(pairs, NodePair{U: r.Nodes[i], V: r.Nodes[i+1]})
	}
	return pairs
}
