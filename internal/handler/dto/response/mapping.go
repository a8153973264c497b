package response

import (
	"github.com/jinzhu/copier"
)

// copyInto fills a response from a read model with matching field names.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(err)
	}
	return &dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = copyInto[T](s)
	}
	return out
}
