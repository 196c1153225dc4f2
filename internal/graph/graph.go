package graph

import (
	"social-store/internal/container"
)

type linkNode struct {
	username string
	next     *linkNode
}

// adjacencyList - список друзей одного пользователя; новые связи
// вставляются в голову, порядок обратно-хронологический
type adjacencyList struct {
	username string
	head     *linkNode
}

func (l *adjacencyList) addFriend(friendUsername string) {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.username == friendUsername {
			return
		}
	}
	l.head = &linkNode{username: friendUsername, next: l.head}
}

func (l *adjacencyList) removeFriend(friendUsername string) {
	var prev *linkNode
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.username == friendUsername {
			if prev == nil {
				l.head = cur.next
			} else {
				prev.next = cur.next
			}
			return
		}
		prev = cur
	}
}

// Graph - неориентированный граф дружбы над именами пользователей
type Graph struct {
	nodes *container.HashTable[adjacencyList]
}

// NewGraph создает пустой граф
func NewGraph() *Graph {
	return &Graph{nodes: container.NewHashTable[adjacencyList]()}
}

// AddNode регистрирует вершину; повторный вызов ничего не меняет
func (g *Graph) AddNode(username string) {
	if g.nodes.Search(username) == nil {
		g.nodes.Insert(username, adjacencyList{username: username})
	}
}

// AddEdge добавляет ребро с обеих сторон; обе вершины должны существовать
func (g *Graph) AddEdge(u1, u2 string) {
	list1 := g.nodes.Search(u1)
	list2 := g.nodes.Search(u2)
	if list1 != nil && list2 != nil {
		list1.addFriend(u2)
		list2.addFriend(u1)
	}
}

// RemoveEdge удаляет ребро с обеих сторон; отсутствующее ребро не ошибка
func (g *Graph) RemoveEdge(u1, u2 string) {
	if list1 := g.nodes.Search(u1); list1 != nil {
		list1.removeFriend(u2)
	}
	if list2 := g.nodes.Search(u2); list2 != nil {
		list2.removeFriend(u1)
	}
}

// IsFriend проверяет наличие ребра
func (g *Graph) IsFriend(u1, u2 string) bool {
	list1 := g.nodes.Search(u1)
	if list1 == nil {
		return false
	}
	for cur := list1.head; cur != nil; cur = cur.next {
		if cur.username == u2 {
			return true
		}
	}
	return false
}

// Friends возвращает прямых друзей пользователя
func (g *Graph) Friends(username string) []string {
	list := g.nodes.Search(username)
	if list == nil {
		return nil
	}
	var out []string
	for cur := list.head; cur != nil; cur = cur.next {
		out = append(out, cur.username)
	}
	return out
}

// SuggestFriends выполняет BFS от start и возвращает ровно второй
// уровень - друзей друзей, не считая самого пользователя и его
// прямых друзей; обход дальше второго уровня не идет
func (g *Graph) SuggestFriends(start string) []string {
	var result []string
	levelQueue := container.NewQueue[string]()
	visited := container.NewHashTable[bool]()

	levelQueue.Enqueue(start)
	visited.Insert(start, true)

	level := 0
	for !levelQueue.IsEmpty() {
		levelSize := len(levelQueue.ToSlice())
		for ; levelSize > 0; levelSize-- {
			u, err := levelQueue.Dequeue()
			if err != nil {
				break
			}
			adjList := g.nodes.Search(u)
			if adjList == nil {
				continue
			}
			for cur := adjList.head; cur != nil; cur = cur.next {
				v := cur.username
				if visited.Search(v) != nil {
					continue
				}
				visited.Insert(v, true)
				levelQueue.Enqueue(v)
				if level == 1 {
					result = append(result, v)
				}
			}
		}
		level++
		if level > 1 {
			break
		}
	}
	return result
}

// Each обходит все вершины вместе с их списками друзей
func (g *Graph) Each(fn func(username string, friends []string)) {
	g.nodes.Each(func(key string, list *adjacencyList) {
		var friends []string
		for cur := list.head; cur != nil; cur = cur.next {
			friends = append(friends, cur.username)
		}
		fn(key, friends)
	})
}
