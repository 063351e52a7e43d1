package mock

import "github.com/fwojciec/chatdump"

var _ chatdump.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of chatdump.Rewriter.
type Rewriter struct {
	RewriteFn func(rawBody string) (string, error)
}

func (r *Rewriter) Rewrite(rawBody string) (string, error) {
	return r.RewriteFn(rawBody)
}
