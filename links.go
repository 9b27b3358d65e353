package dlx

// Low-level link primitives. Unlinking leaves the node's own four links
// intact, so relinking restores the list exactly — provided no neighbour
// moved in between and the calls nest in LIFO order. All are O(1).

// unlinkLR excises x from its horizontal list.
func unlinkLR(x *Node) {
	x.left.right = x.right
	x.right.left = x.left
}

// relinkLR reinserts x into its horizontal list.
func relinkLR(x *Node) {
	x.left.right = x
	x.right.left = x
}

// unlinkUD excises x from its vertical list.
func unlinkUD(x *Node) {
	x.up.down = x.down
	x.down.up = x.up
}

// relinkUD reinserts x into its vertical list.
func relinkUD(x *Node) {
	x.up.down = x
	x.down.up = x
}

// excisedUD reports whether x is currently excised vertically.
func excisedUD(x *Node) bool {
	return x.up.down != x
}

// excisedLR reports whether x is currently excised horizontally. On a
// column header this is exactly "the column is covered".
func excisedLR(x *Node) bool {
	return x.left.right != x
}
