package container

// Capacity - фиксированное число бакетов; таблица не перестраивается.
const Capacity = 100

type hashNode[V any] struct {
	key   string
	value V
	next  *hashNode[V]
}

// HashTable - хеш-таблица с цепочками, ключ всегда строка
type HashTable[V any] struct {
	buckets [Capacity]*hashNode[V]
}

// NewHashTable создает пустую таблицу
func NewHashTable[V any]() *HashTable[V] {
	return &HashTable[V]{}
}

// djb2 по модулю числа бакетов
func hash(key string) int {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = ((h << 5) + h) + uint32(key[i])
	}
	return int(h % Capacity)
}

// Insert записывает значение; существующий ключ перезаписывается
func (t *HashTable[V]) Insert(key string, value V) {
	idx := hash(key)
	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			n.value = value
			return
		}
	}
	node := &hashNode[V]{key: key, value: value, next: t.buckets[idx]}
	t.buckets[idx] = node
}

// Search возвращает указатель на хранимое значение или nil
func (t *HashTable[V]) Search(key string) *V {
	idx := hash(key)
	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			return &n.value
		}
	}
	return nil
}

// Each обходит все пары в порядке бакетов
func (t *HashTable[V]) Each(fn func(key string, value *V)) {
	for i := 0; i < Capacity; i++ {
		for n := t.buckets[i]; n != nil; n = n.next {
			fn(n.key, &n.value)
		}
	}
}
