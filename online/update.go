package online

import (
	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
)

// updateFunction walks sg outward from n's own found neighbors (nl) to
// depth updateDepth, inserting a back-edge (n, similarity) into every
// existing node it reaches whose entry lives in this shard — spec.md
// §4.F's "UpdateFunction (bounded local back-edge update)".
//
// A neighbor ID not present in sg belongs to a different partition and is
// skipped, the same sibling-partition convention localgraph.Search and
// bfs.FindNeighbors use.
func updateFunction[T any](sg *localgraph.Graph[T], n node.Node[T], nl *node.NeighborList, sim node.Similarity[T]) {
	analyze := make([]node.NodeID, 0, nl.Size())
	for _, nb := range nl.Neighbors() {
		analyze = append(analyze, nb.ID)
	}

	visited := make(map[node.NodeID]bool, sg.Len())

	for hop := 0; hop < updateDepth; hop++ {
		var next []node.NodeID
		for _, other := range analyze {
			if visited[other] {
				continue
			}
			visited[other] = true

			otherNode, otherNl, ok := sg.Get(other)
			if !ok || otherNl == nil {
				continue
			}

			for _, m := range otherNl.Neighbors() {
				if !visited[m.ID] {
					next = append(next, m.ID)
				}
			}

			otherNl.Add(node.Neighbor{ID: n.ID, Similarity: sim(n.Value, otherNode.Value)})
		}
		analyze = next
	}
}

// removeUpdate drops t's own entry from sg and, for every node in
// toUpdate present in this shard, removes t from its NeighborList and
// offers every candidate (looked up via valueOf, which spans all shards)
// as a replacement — NeighborList.Add's own top-k rule decides whether
// each candidate actually displaces a weaker entry. Spec.md §4.F's
// "RemoveUpdate(t, to_update, candidates)".
func removeUpdate[T any](sg *localgraph.Graph[T], t node.NodeID, toUpdate map[node.NodeID]bool, candidates []node.NodeID, valueOf map[node.NodeID]T, sim node.Similarity[T]) {
	sg.Delete(t)

	for u := range toUpdate {
		uNode, nl, ok := sg.Get(u)
		if !ok || nl == nil {
			continue
		}
		nl.RemoveNode(t)

		for _, c := range candidates {
			if c == u {
				continue
			}
			cVal, ok := valueOf[c]
			if !ok {
				continue
			}
			nl.Add(node.Neighbor{ID: c, Similarity: sim(uNode.Value, cVal)})
		}
	}
}
