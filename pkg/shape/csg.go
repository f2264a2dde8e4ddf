package shape

// filterCSG walks sorted intersections of a Csg node's two branches,
// tracking "currently inside left/right" state and keeping each hit whose
// branch membership is allowed under the combining operator (spec.md §4.D
// "CSG filter").
func filterCSG(csg *Shape, xs []Intersection) []Intersection {
	insideLeft, insideRight := false, false
	result := make([]Intersection, 0, len(xs))

	for _, x := range xs {
		leftHit := subtreeContains(csg.Left, x.Object)
		if csgAllowed(csg.Op, leftHit, insideLeft, insideRight) {
			result = append(result, x)
		}
		if leftHit {
			insideLeft = !insideLeft
		} else {
			insideRight = !insideRight
		}
	}
	return result
}

func csgAllowed(op CSGOp, leftHit, insideLeft, insideRight bool) bool {
	switch op {
	case Union:
		return (leftHit && !insideRight) || (!leftHit && !insideLeft)
	case IntersectionOp:
		return (leftHit && insideRight) || (!leftHit && insideLeft)
	case Difference:
		return (leftHit && !insideRight) || (!leftHit && insideLeft)
	default:
		return false
	}
}

// subtreeContains reports whether target is reachable from root, used to
// classify which branch of a Csg an intersection belongs to without
// maintaining parent pointers (spec.md §9 "Parent links / cyclic graphs").
func subtreeContains(root, target *Shape) bool {
	if root == target {
		return true
	}
	switch root.Kind {
	case KindGroup:
		for _, c := range root.Children {
			if subtreeContains(c, target) {
				return true
			}
		}
		return false
	case KindCSG:
		return subtreeContains(root.Left, target) || subtreeContains(root.Right, target)
	default:
		return false
	}
}
