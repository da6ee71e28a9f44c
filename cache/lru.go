// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import "github.com/gogpu/wgtypes"

// lruNode is a node in a shard's recency list.
type lruNode struct {
	format wgtypes.TextureFormat
	prev   *lruNode
	next   *lruNode
}

// lruList orders the formats of one shard by last use.
// The head is the most recently used. Not safe for concurrent use.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

func (l *lruList) pushFront(f wgtypes.TextureFormat) *lruNode {
	node := &lruNode{format: f}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

func (l *lruList) moveToFront(node *lruNode) {
	if node == l.head {
		return
	}
	l.unlink(node)
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// removeOldest unlinks the least recently used node and returns its format.
func (l *lruList) removeOldest() (wgtypes.TextureFormat, bool) {
	if l.tail == nil {
		return 0, false
	}
	node := l.tail
	l.unlink(node)
	return node.format, true
}

func (l *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
