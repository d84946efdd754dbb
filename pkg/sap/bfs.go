package sap

import "slices"

const unreached = -1

// search is the distance record of one multi-source breadth-first search.
// It lives only for the duration of a query.
type search struct {
	dist   []int // hop count from the nearest source, or unreached
	parent []int // predecessor on a shortest path; sources point to themselves
}

// bfs runs a breadth-first search from all of sources at once. Parents are
// recorded only when a path has to be reconstructed.
func (e *Engine) bfs(sources []int, withParents bool) search {
	n := e.g.V()
	s := search{dist: make([]int, n)}
	for i := range s.dist {
		s.dist[i] = unreached
	}
	if withParents {
		s.parent = make([]int, n)
	}

	queue := make([]int, 0, len(sources))
	for _, v := range sources {
		if s.dist[v] == unreached {
			s.dist[v] = 0
			if withParents {
				s.parent[v] = v
			}
			queue = append(queue, v)
		}
	}

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, w := range e.g.Out(v) {
			if s.dist[w] != unreached {
				continue
			}
			s.dist[w] = s.dist[v] + 1
			if withParents {
				s.parent[w] = v
			}
			queue = append(queue, w)
		}
	}
	return s
}

// walkTo returns the shortest path from the nearest source to v, inclusive.
// v must have been reached and parents must have been recorded.
func (s search) walkTo(v int) []int {
	path := make([]int, 0, s.dist[v]+1)
	for {
		path = append(path, v)
		if s.parent[v] == v {
			break
		}
		v = s.parent[v]
	}
	slices.Reverse(path)
	return path
}
