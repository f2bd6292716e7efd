package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	id              string
	parent          string
	selfPoints      float64
	totalSelfPoints float64
}

func newTestGraph(nodes ...testNode) *UserGraph {
	graph := &UserGraph{Nodes: make(map[string]*GraphNode)}
	for _, n := range nodes {
		graph.Nodes[n.id] = &GraphNode{
			UserID:          n.id,
			Name:            n.id,
			SelfPoints:      n.selfPoints,
			TotalSelfPoints: n.totalSelfPoints,
		}
		graph.Order = append(graph.Order, n.id)
	}
	for _, n := range nodes {
		if n.parent == "" {
			continue
		}
		if parent, ok := graph.Nodes[n.parent]; ok {
			parent.ReferredIDs = append(parent.ReferredIDs, n.id)
		}
	}
	return graph
}

func TestReferralPointsNoReferrals(t *testing.T) {
	graph := newTestGraph(testNode{id: "SA10001"})

	assert.Equal(t, 0.0, CalculateRealtimeReferralPoints(graph, "SA10001"))
	assert.Equal(t, 0.0, CalculateDirectReferralPoints(graph, "SA10001"))

	totalPoints, downline := CalculateTeamSummary(graph, map[string]bool{}, "SA10001")
	assert.Equal(t, 0.0, totalPoints)
	assert.Equal(t, 0, downline)
}

func TestReferralPointsUnknownRoot(t *testing.T) {
	graph := newTestGraph(testNode{id: "SA10001"})

	assert.Equal(t, 0.0, CalculateRealtimeReferralPoints(graph, "SA99999"))
	assert.Equal(t, 0.0, CalculateDirectReferralPoints(graph, "SA99999"))
}

func TestDirectAndLevelTwoPointsMatch(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "root"},
		testNode{id: "child", parent: "root", selfPoints: 1000},
	)

	direct := CalculateDirectReferralPoints(graph, "root")
	referred := CalculateRealtimeReferralPoints(graph, "root")

	// The level-2 term is computed twice under different names and the API
	// reports both plus their sum.
	assert.InDelta(t, 120.0, direct, 1e-9)
	assert.InDelta(t, 120.0, referred, 1e-9)
	assert.InDelta(t, 240.0, direct+referred, 1e-9)
}

func TestReferralPointsLevelWeights(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "root"},
		testNode{id: "l2", parent: "root", selfPoints: 100},
		testNode{id: "l3", parent: "l2", selfPoints: 200},
		testNode{id: "l4", parent: "l3", selfPoints: 300},
		testNode{id: "l5", parent: "l4", selfPoints: 400},
		testNode{id: "l6", parent: "l5", selfPoints: 500},
		testNode{id: "l7", parent: "l6", selfPoints: 600},
	)

	want := 100*0.12 + 200*0.05 + 300*0.03 + 400*0.02 + 500*0.01 + 600*0.008
	assert.InDelta(t, want, CalculateRealtimeReferralPoints(graph, "root"), 1e-9)
}

func TestReferralPointsDepthCap(t *testing.T) {
	// Chain of 12 levels below the root: only levels 2-10 may contribute.
	nodes := []testNode{{id: "root"}}
	parent := "root"
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("c%d", i+1)
		nodes = append(nodes, testNode{id: id, parent: parent, selfPoints: 1000})
		parent = id
	}
	graph := newTestGraph(nodes...)

	weightSum := 0.12 + 0.05 + 0.03 + 0.02 + 0.01 + 4*0.008
	assert.InDelta(t, 1000*weightSum, CalculateRealtimeReferralPoints(graph, "root"), 1e-9)
}

func TestReferralPointsCycleTerminates(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "A", selfPoints: 100},
		testNode{id: "B", parent: "A", selfPoints: 50},
	)
	// Malformed data: B refers back to A.
	graph.Nodes["B"].ReferredIDs = append(graph.Nodes["B"].ReferredIDs, "A")

	// B contributes at level 2, A's self points are picked up once via the
	// back edge at level 3, then the repeated branch yields nothing more.
	want := 50*0.12 + 100*0.05
	assert.InDelta(t, want, CalculateRealtimeReferralPoints(graph, "A"), 1e-9)
}

func TestReferralPointsDiamondExpandsSharedNodeOnce(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "root"},
		testNode{id: "a", parent: "root", selfPoints: 100},
		testNode{id: "b", parent: "root", selfPoints: 100},
		testNode{id: "c", parent: "a", selfPoints: 1000},
		testNode{id: "d", parent: "c", selfPoints: 500},
	)
	// c is also reachable through b.
	graph.Nodes["b"].ReferredIDs = append(graph.Nodes["b"].ReferredIDs, "c")

	// Both edges into c contribute its level-3 share, but c's subtree (d) is
	// expanded only once.
	want := 2*100*0.12 + 2*1000*0.05 + 500*0.03
	assert.InDelta(t, want, CalculateRealtimeReferralPoints(graph, "root"), 1e-9)
}

func TestTeamSummaryQualifiedCounting(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "root"},
		testNode{id: "a", parent: "root", totalSelfPoints: 100},
		testNode{id: "b", parent: "root", totalSelfPoints: 200},
		testNode{id: "c", parent: "a", totalSelfPoints: 300},
	)
	qualified := map[string]bool{"a": true, "c": true}

	totalPoints, downline := CalculateTeamSummary(graph, qualified, "root")

	// Points sum over the whole subtree, the count only over qualified
	// members.
	assert.InDelta(t, 600.0, totalPoints, 1e-9)
	assert.Equal(t, 2, downline)

	assert.Equal(t, 1, CountQualifiedDirectReferrals(graph, qualified, "root"))
}

func TestTeamSummaryDepthCap(t *testing.T) {
	nodes := []testNode{{id: "root"}}
	parent := "root"
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("c%d", i+1)
		nodes = append(nodes, testNode{id: id, parent: parent, totalSelfPoints: 10})
		parent = id
	}
	graph := newTestGraph(nodes...)

	qualified := make(map[string]bool)
	for _, n := range nodes {
		qualified[n.id] = true
	}

	totalPoints, downline := CalculateTeamSummary(graph, qualified, "root")

	// Nodes expand through level 10, so descendants c1..c10 are counted and
	// the chain's tail is not.
	assert.InDelta(t, 100.0, totalPoints, 1e-9)
	assert.Equal(t, 10, downline)
}

func TestTeamSummaryCycleTerminates(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "A", totalSelfPoints: 5},
		testNode{id: "B", parent: "A", totalSelfPoints: 7},
	)
	graph.Nodes["B"].ReferredIDs = append(graph.Nodes["B"].ReferredIDs, "A")

	totalPoints, downline := CalculateTeamSummary(graph, map[string]bool{"A": true, "B": true}, "A")

	assert.InDelta(t, 12.0, totalPoints, 1e-9)
	assert.Equal(t, 2, downline)
}

func TestAllTeamSummariesIndependentRoots(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "root"},
		testNode{id: "child", parent: "root", totalSelfPoints: 50},
		testNode{id: "leaf", parent: "child", totalSelfPoints: 25},
	)
	qualified := map[string]bool{"child": true, "leaf": true}

	results := CalculateAllTeamSummaries(graph, qualified)
	require.Len(t, results, 3)

	byID := make(map[string]TeamSummary, len(results))
	for _, r := range results {
		byID[r.UserID] = r
	}

	// Each root gets its own visited set: the child's summary must not be
	// emptied out by the root's earlier traversal.
	assert.InDelta(t, 75.0, byID["root"].TotalPoints, 1e-9)
	assert.Equal(t, 2, byID["root"].TotalDownlineCount)
	assert.Equal(t, 1, byID["root"].DirectReferrals)

	assert.InDelta(t, 25.0, byID["child"].TotalPoints, 1e-9)
	assert.Equal(t, 1, byID["child"].TotalDownlineCount)

	assert.Equal(t, 0.0, byID["leaf"].TotalPoints)
	assert.Equal(t, 0, byID["leaf"].TotalDownlineCount)
}

func TestTeamMembersUnlimitedDepth(t *testing.T) {
	nodes := []testNode{{id: "root"}}
	parent := "root"
	for i := 0; i < 13; i++ {
		id := fmt.Sprintf("c%d", i+1)
		nodes = append(nodes, testNode{id: id, parent: parent, selfPoints: 1})
		parent = id
	}
	graph := newTestGraph(nodes...)

	members := TeamMembers(graph, "root")
	assert.Len(t, members, 13)
}

func TestTeamMembersCycleTerminates(t *testing.T) {
	graph := newTestGraph(
		testNode{id: "A"},
		testNode{id: "B", parent: "A"},
	)
	graph.Nodes["B"].ReferredIDs = append(graph.Nodes["B"].ReferredIDs, "A")

	members := TeamMembers(graph, "A")
	require.Len(t, members, 1)
	assert.Equal(t, "B", members[0].UserID)
}
