package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newGraph(usernames ...string) *Graph {
	g := NewGraph()
	for _, u := range usernames {
		g.AddNode(u)
	}
	return g
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := newGraph("alice", "bob")

	g.AddEdge("alice", "bob")

	// Assert что ребро видно с обеих сторон
	assert.True(t, g.IsFriend("alice", "bob"))
	assert.True(t, g.IsFriend("bob", "alice"))
}

func TestAddEdge_UnknownNode(t *testing.T) {
	g := newGraph("alice")

	g.AddEdge("alice", "ghost")

	// Ребро к несуществующей вершине не появляется ни с одной стороны
	assert.False(t, g.IsFriend("alice", "ghost"))
	assert.Empty(t, g.Friends("alice"))
}

func TestAddEdge_DuplicateSuppressed(t *testing.T) {
	g := newGraph("alice", "bob")

	g.AddEdge("alice", "bob")
	g.AddEdge("alice", "bob")

	assert.Len(t, g.Friends("alice"), 1)
	assert.Len(t, g.Friends("bob"), 1)
}

func TestRemoveEdge(t *testing.T) {
	g := newGraph("alice", "bob")
	g.AddEdge("alice", "bob")

	g.RemoveEdge("alice", "bob")

	assert.False(t, g.IsFriend("alice", "bob"))
	assert.False(t, g.IsFriend("bob", "alice"))

	// Повторное удаление - no-op
	g.RemoveEdge("alice", "bob")
	assert.False(t, g.IsFriend("alice", "bob"))
}

func TestFriends_HeadInsertionOrder(t *testing.T) {
	g := newGraph("alice", "bob", "carol")
	g.AddEdge("alice", "bob")
	g.AddEdge("alice", "carol")

	// Новые связи в голове списка
	assert.Equal(t, []string{"carol", "bob"}, g.Friends("alice"))
}

func TestSuggestFriends_LevelTwoOnly(t *testing.T) {
	g := newGraph("alice", "bob", "carol", "dave", "eve")
	g.AddEdge("alice", "bob")
	g.AddEdge("bob", "carol")
	g.AddEdge("carol", "dave")
	g.AddEdge("alice", "eve")

	suggestions := g.SuggestFriends("alice")

	// Только второй уровень: carol; dave на третьем уровне,
	// bob и eve - прямые друзья
	assert.Equal(t, []string{"carol"}, suggestions)
}

func TestSuggestFriends_ExcludesSelfAndDirectFriends(t *testing.T) {
	g := newGraph("alice", "bob", "carol")
	g.AddEdge("alice", "bob")
	g.AddEdge("alice", "carol")
	g.AddEdge("bob", "carol")

	suggestions := g.SuggestFriends("alice")

	assert.NotContains(t, suggestions, "alice")
	assert.NotContains(t, suggestions, "bob")
	assert.NotContains(t, suggestions, "carol")
	assert.Empty(t, suggestions)
}

func TestSuggestFriends_NoDuplicates(t *testing.T) {
	// dave достижим через bob и через carol, но в результате один раз
	g := newGraph("alice", "bob", "carol", "dave")
	g.AddEdge("alice", "bob")
	g.AddEdge("alice", "carol")
	g.AddEdge("bob", "dave")
	g.AddEdge("carol", "dave")

	suggestions := g.SuggestFriends("alice")

	assert.Equal(t, []string{"dave"}, suggestions)
}

func TestSuggestFriends_IsolatedNode(t *testing.T) {
	g := newGraph("alice")

	assert.Empty(t, g.SuggestFriends("alice"))
}

func TestEach_VisitsAllNodes(t *testing.T) {
	g := newGraph("alice", "bob")
	g.AddEdge("alice", "bob")

	visited := map[string][]string{}
	g.Each(func(username string, friends []string) {
		visited[username] = friends
	})

	assert.Len(t, visited, 2)
	assert.Equal(t, []string{"bob"}, visited["alice"])
	assert.Equal(t, []string{"alice"}, visited["bob"])
}
