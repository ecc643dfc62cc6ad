package service

import (
	"commune/internal/models"
)

// BuildCommentForest assembles a post's flat comment slice into a nested
// forest: the ordered roots, each carrying its direct replies recursively.
//
// The input must be ordered (created_at ascending); sibling groups keep
// that order, so the oldest reply reads first. One grouping pass links
// every comment to its parent node, then an explicit-stack traversal
// assigns depths, keeping very deep threads off the call stack. O(n).
//
// A comment whose parent id does not resolve within the slice (parent
// removed, or corrupt data) is promoted to a root rather than dropped, so
// no content silently disappears.
func BuildCommentForest(comments []*models.Comment) []*models.CommentNode {
	nodes := make(map[uint]*models.CommentNode, len(comments))
	ordered := make([]*models.CommentNode, 0, len(comments))
	for _, c := range comments {
		n := &models.CommentNode{Comment: *c, Replies: []*models.CommentNode{}}
		nodes[c.ID] = n
		ordered = append(ordered, n)
	}

	roots := make([]*models.CommentNode, 0, len(ordered))
	for _, n := range ordered {
		if n.ParentID != nil {
			if parent, ok := nodes[*n.ParentID]; ok && parent != n {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	stack := make([]*models.CommentNode, 0, len(ordered))
	for i := len(roots) - 1; i >= 0; i-- {
		roots[i].Depth = 0
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := len(n.Replies) - 1; i >= 0; i-- {
			reply := n.Replies[i]
			reply.Depth = n.Depth + 1
			stack = append(stack, reply)
		}
	}

	return roots
}
