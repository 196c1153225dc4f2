package container

type bstNode[T any] struct {
	data  T
	left  *bstNode[T]
	right *bstNode[T]
}

// BST - двоичное дерево поиска с компаратором; равные ключи
// всегда уходят вправо, поэтому дубликаты допустимы
type BST[T any] struct {
	root *bstNode[T]
	less func(a, b T) bool
}

// NewBST создает пустое дерево с заданным порядком
func NewBST[T any](less func(a, b T) bool) *BST[T] {
	return &BST[T]{less: less}
}

// Insert вставляет значение, сохраняя порядок
func (t *BST[T]) Insert(val T) {
	t.root = t.insert(t.root, val)
}

func (t *BST[T]) insert(node *bstNode[T], val T) *bstNode[T] {
	if node == nil {
		return &bstNode[T]{data: val}
	}
	if t.less(val, node.data) {
		node.left = t.insert(node.left, val)
	} else {
		node.right = t.insert(node.right, val)
	}
	return node
}

// Clear сбрасывает дерево
func (t *BST[T]) Clear() {
	t.root = nil
}

// InOrder возвращает элементы по возрастанию
func (t *BST[T]) InOrder() []T {
	var out []T
	inOrder(t.root, &out)
	return out
}

func inOrder[T any](node *bstNode[T], out *[]T) {
	if node == nil {
		return
	}
	inOrder(node.left, out)
	*out = append(*out, node.data)
	inOrder(node.right, out)
}

// ReverseInOrder возвращает элементы по убыванию
func (t *BST[T]) ReverseInOrder() []T {
	var out []T
	reverseInOrder(t.root, &out)
	return out
}

func reverseInOrder[T any](node *bstNode[T], out *[]T) {
	if node == nil {
		return
	}
	reverseInOrder(node.right, out)
	*out = append(*out, node.data)
	reverseInOrder(node.left, out)
}
