package patch

// Coalesce returns *ptr when set, otherwise fallback. Partial updates use it to
// keep fields the request left out.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
