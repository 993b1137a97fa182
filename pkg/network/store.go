package network

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	da "github.com/lintang-b-s/roadroute/pkg/datastructure"
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/roadroute"
	"github.com/paulmach/osm"
)

type nodeRecord struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type edgeRecord struct {
	U        int64              `json:"u"`
	V        int64              `json:"v"`
	Geometry da.OptionalSegment `json:"geometry"`
	Tags     map[string]string  `json:"tags"`
}

type networkFile struct {
	Nodes []nodeRecord `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

type edge struct {
	geometry da.OptionalSegment
	tags     osm.Tags
}

/*
Store. read only road network held in memory, serves the edge attributes the route
assembler asks for.

Edges are directed (u, v). When only (v, u) is stored, the edge is served reversed, as
most exports keep a two way street once.
*/
type Store struct {
	nodes map[int64]geo.Coordinate
	edges map[da.NodePair]edge
}

func NewStore() *Store {
	return &Store{
		nodes: make(map[int64]geo.Coordinate),
		edges: make(map[da.NodePair]edge),
	}
}

func (s *Store) AddNode(id int64, coord geo.Coordinate) {
	s.nodes[id] = coord
}

func (s *Store) AddEdge(u, v int64, geometry da.OptionalSegment, tags osm.Tags) error {
	if _, ok := s.nodes[u]; !ok {
		return fmt.Errorf("edge (%d, %d): unknown node %d", u, v, u)
	}
	if _, ok := s.nodes[v]; !ok {
		return fmt.Errorf("edge (%d, %d): unknown node %d", u, v, v)
	}
	s.edges[da.NodePair{U: u, V: v}] = edge{geometry: geometry, tags: tags}
	return nil
}

func (s *Store) NumNodes() int {
	return len(s.nodes)
}

func (s *Store) NumEdges() int {
	return len(s.edges)
}

func (s *Store) Node(id int64) (geo.Coordinate, bool) {
	c, ok := s.nodes[id]
	return c, ok
}

// Edge. implements roadroute.EdgeLookup.
func (s *Store) Edge(u, v int64) (da.EdgeInfo, error) {
	if e, ok := s.edges[da.NodePair{U: u, V: v}]; ok {
		return da.NewEdgeInfo(s.nodes[u], s.nodes[v], e.geometry, e.tags), nil
	}
	if e, ok := s.edges[da.NodePair{U: v, V: u}]; ok {
		return da.NewEdgeInfo(s.nodes[v], s.nodes[u], e.geometry, e.tags).Reverse(), nil
	}
	return da.EdgeInfo{}, fmt.Errorf("(%d, %d): %w", u, v, roadroute.ErrEdgeNotFound)
}

func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open road network %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Store, error) {
	var nf networkFile
	if err := json.NewDecoder(r).Decode(&nf); err != nil {
		return nil, fmt.Errorf("decode road network: %w", err)
	}

	s := NewStore()
	for _, n := range nf.Nodes {
		s.AddNode(n.ID, geo.NewCoordinate(n.Lat, n.Lon))
	}
	for _, e := range nf.Edges {
		if err := s.AddEdge(e.U, e.V, e.Geometry, toTags(e.Tags)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// toTags. sorted by key so lookups and output are deterministic.
func toTags(m map[string]string) osm.Tags {
	tags := make(osm.Tags, 0, len(m))
	for k, v := range m {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Key < tags[j].Key
	})
	return tags
}
