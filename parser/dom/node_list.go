package dom

// NodeList is an ordered list of non-owning node references.
type NodeList []*Node

// Index returns the position of n in the list, or -1.
func (h NodeList) Index(n *Node) int {
	for i := range h {
		if n == h[i] {
			return i
		}
	}
	return -1
}

// Contains reports whether n is in the list.
func (h NodeList) Contains(n *Node) bool {
	return h.Index(n) != -1
}

// Top returns the last node in the list, or nil when it is empty.
func (h NodeList) Top() *Node {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Remove deletes the node at i and returns it.
func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// Insert places n at position i, shifting later nodes up. An i past the end
// appends.
func (h *NodeList) Insert(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append(*h, nil)
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = n
}

func (h *NodeList) Push(n *Node) {
	*h = append(*h, n)
}

func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

// PopUntil pops nodes until one satisfying match has been popped, and
// returns it. It returns nil if the list runs out first.
func (h *NodeList) PopUntil(match func(*Node) bool) *Node {
	for {
		popped := h.Pop()
		if popped == nil || match(popped) {
			return popped
		}
	}
}
