package funk

func Map[S ~[]T1, T1, T2 any](sl S, op func(T1) T2) (out []T2) {
	for _, item := range sl {
		out = append(out, op(item))
	}

	return
}

func Filter[S ~[]T, T any](sl S, pred func(T) bool) (out []T) {
	for _, item := range sl {
		if pred(item) {
			out = append(out, item)
		}
	}

	return
}
