package services

import (
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
)

// MaxReferralDepth caps how deep a downline traversal goes. The query root is
// level 1, its direct referrals are level 2.
const MaxReferralDepth = 10

// maxTraversalNodes bounds a single traversal against pathological graphs
// that the depth cap alone would not contain.
const maxTraversalNodes = 100000

// DirectReferralRate is the share of a direct referral's self points credited
// to the referrer.
const DirectReferralRate = 0.12

// levelPercentages weights a downline member's self points by its level
// relative to the query root. Levels past MaxReferralDepth earn nothing.
var levelPercentages = map[int]float64{
	2:  0.12,
	3:  0.05,
	4:  0.03,
	5:  0.02,
	6:  0.01,
	7:  0.008,
	8:  0.008,
	9:  0.008,
	10: 0.008,
}

// GraphNode is the in-memory projection of one user for a traversal pass.
type GraphNode struct {
	UserID          string
	Name            string
	ReferredIDs     []string
	SelfPoints      float64
	TotalSelfPoints float64
}

// UserGraph indexes the whole population for O(1) lookups during a traversal.
// It must be rebuilt for every top-level computation because points mutate
// between calls.
type UserGraph struct {
	Nodes map[string]*GraphNode
	// Order lists userIds in creation order and drives batch reports.
	Order []string
}

// BuildUserGraph loads every user once and assembles the parent → children
// index. If the population cannot be loaded no partial index is usable and
// the whole computation is aborted.
func BuildUserGraph() (*UserGraph, error) {
	var users []models.User
	err := database.DB.
		Select("user_id", "name", "parent_id", "self_points", "total_self_points").
		Order("created_at asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	graph := &UserGraph{
		Nodes: make(map[string]*GraphNode, len(users)),
		Order: make([]string, 0, len(users)),
	}
	for _, u := range users {
		graph.Nodes[u.UserID] = &GraphNode{
			UserID:          u.UserID,
			Name:            u.Name,
			SelfPoints:      u.SelfPoints,
			TotalSelfPoints: u.TotalSelfPoints,
		}
		graph.Order = append(graph.Order, u.UserID)
	}
	for _, u := range users {
		if u.ParentID == nil {
			continue
		}
		if parent, ok := graph.Nodes[*u.ParentID]; ok {
			parent.ReferredIDs = append(parent.ReferredIDs, u.UserID)
		}
	}
	return graph, nil
}

// LoadCheckoutUserIDs returns the set of userIds with at least one settled
// purchase. Team summaries count only these users as active downline.
func LoadCheckoutUserIDs() (map[string]bool, error) {
	var userIDs []string
	err := database.DB.Model(&models.Checkout{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}

	qualified := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		qualified[id] = true
	}
	return qualified, nil
}

type walkFrame struct {
	id    string
	level int
}

// CalculateRealtimeReferralPoints computes the level-weighted sum of self
// points across the root's downline. The walk is an explicit stack with a
// visited set owned by this one call: a repeated node contributes its subtree
// only once, which keeps cyclic referral data from looping forever.
func CalculateRealtimeReferralPoints(graph *UserGraph, rootID string) float64 {
	visited := make(map[string]bool)
	stack := []walkFrame{{id: rootID, level: 1}}

	total := 0.0
	expanded := 0

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.level > MaxReferralDepth || visited[frame.id] {
			continue
		}
		visited[frame.id] = true

		expanded++
		if expanded > maxTraversalNodes {
			break
		}

		node, ok := graph.Nodes[frame.id]
		if !ok {
			continue
		}

		// Children are pushed in reverse so the walk matches depth-first
		// preorder over the referral lists.
		for i := len(node.ReferredIDs) - 1; i >= 0; i-- {
			childID := node.ReferredIDs[i]
			child, ok := graph.Nodes[childID]
			if !ok {
				continue
			}
			if weight, ok := levelPercentages[frame.level+1]; ok {
				total += child.SelfPoints * weight
			}
			stack = append(stack, walkFrame{id: childID, level: frame.level + 1})
		}
	}

	return total
}

// CalculateDirectReferralPoints sums 12% of each direct referral's self
// points. This intentionally duplicates the level-2 term of the recursive
// computation: both numbers are reported side by side, plus their sum.
func CalculateDirectReferralPoints(graph *UserGraph, rootID string) float64 {
	node, ok := graph.Nodes[rootID]
	if !ok {
		return 0
	}

	total := 0.0
	for _, childID := range node.ReferredIDs {
		if child, ok := graph.Nodes[childID]; ok {
			total += child.SelfPoints * DirectReferralRate
		}
	}
	return total
}

// TeamSummary aggregates one user's downline.
type TeamSummary struct {
	UserID             string  `json:"userId"`
	Name               string  `json:"name"`
	TotalPoints        float64 `json:"totalPoints"`
	TotalDownlineCount int     `json:"totalDownlineCount"`
	DirectReferrals    int     `json:"directReferrals"`
}

// CalculateTeamSummary walks the downline like the points engine but without
// per-level weighting: lifetime points sum across the depth-capped subtree
// while the downline count increments only for qualified members (those with
// a checkout record). The visited set belongs to this root alone.
func CalculateTeamSummary(graph *UserGraph, qualified map[string]bool, rootID string) (totalPoints float64, totalDownlineCount int) {
	visited := make(map[string]bool)
	stack := []walkFrame{{id: rootID, level: 1}}

	expanded := 0

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.level > MaxReferralDepth || visited[frame.id] {
			continue
		}
		visited[frame.id] = true

		expanded++
		if expanded > maxTraversalNodes {
			break
		}

		node, ok := graph.Nodes[frame.id]
		if !ok {
			continue
		}

		for i := len(node.ReferredIDs) - 1; i >= 0; i-- {
			childID := node.ReferredIDs[i]
			child, ok := graph.Nodes[childID]
			if !ok {
				continue
			}
			if qualified[childID] {
				totalDownlineCount++
			}
			totalPoints += child.TotalSelfPoints
			stack = append(stack, walkFrame{id: childID, level: frame.level + 1})
		}
	}

	return totalPoints, totalDownlineCount
}

// CountQualifiedDirectReferrals counts the root's immediate children present
// in the qualifying set.
func CountQualifiedDirectReferrals(graph *UserGraph, qualified map[string]bool, rootID string) int {
	node, ok := graph.Nodes[rootID]
	if !ok {
		return 0
	}

	count := 0
	for _, childID := range node.ReferredIDs {
		if qualified[childID] {
			count++
		}
	}
	return count
}

// CalculateAllTeamSummaries computes an independent team summary rooted at
// every user in the population. Each root gets a fresh visited set.
func CalculateAllTeamSummaries(graph *UserGraph, qualified map[string]bool) []TeamSummary {
	results := make([]TeamSummary, 0, len(graph.Order))
	for _, userID := range graph.Order {
		node := graph.Nodes[userID]
		totalPoints, totalDownlineCount := CalculateTeamSummary(graph, qualified, userID)
		results = append(results, TeamSummary{
			UserID:             userID,
			Name:               node.Name,
			TotalPoints:        totalPoints,
			TotalDownlineCount: totalDownlineCount,
			DirectReferrals:    CountQualifiedDirectReferrals(graph, qualified, userID),
		})
	}
	return results
}

// TeamMembers collects the full downline of a user with no depth cap, used by
// the member detail endpoint. The visited set still guards against cycles.
func TeamMembers(graph *UserGraph, rootID string) []*GraphNode {
	visited := map[string]bool{rootID: true}
	queue := []string{rootID}

	var members []*GraphNode
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node, ok := graph.Nodes[id]
		if !ok {
			continue
		}
		for _, childID := range node.ReferredIDs {
			if visited[childID] {
				continue
			}
			visited[childID] = true
			if child, ok := graph.Nodes[childID]; ok {
				members = append(members, child)
				queue = append(queue, childID)
			}
			if len(members) >= maxTraversalNodes {
				return members
			}
		}
	}
	return members
}
