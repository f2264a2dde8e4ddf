package math3d

// Compose builds a single forward transform matrix from a sequence of
// operations given in declaration order: the first op is applied to the
// object first, and each subsequent op premultiplies the accumulated
// result (spec.md §3 "Transform"). For ops = [T1, T2, T3] the forward
// matrix is T3 * T2 * T1.
func Compose(ops ...Mat4) Mat4 {
	forward := Identity()
	for _, op := range ops {
		forward = op.Mul(forward)
	}
	return forward
}

// ComposeInverse composes ops into a forward transform and returns its
// inverse — the only form a Shape or Camera ever stores (spec.md §9
// "Transform inverses only"). Returns ErrSingularMatrix if the composed
// transform has no inverse, which callers surface as a construction error
// (spec.md §7).
func ComposeInverse(ops ...Mat4) (Mat4, error) {
	return Compose(ops...).Inverse()
}
