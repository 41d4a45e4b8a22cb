package internal

// DefaultEqual is the equality used when a Producer or Derived is
// constructed without an explicit comparator: ordinary Go `==` for
// comparable dynamic types, and "never equal" for anything that would
// panic on comparison (slices, maps, funcs held in an `any`).
func DefaultEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
