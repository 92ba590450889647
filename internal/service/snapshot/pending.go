package snapshot

import "context"

// Pending — результат фоновой операции со снимком.
// Рабочий код его игнорирует, тесты дожидаются завершения через Wait.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Completed возвращает уже завершённый Pending (например, когда сохранять нечего).
func Completed(err error) *Pending {
	p := newPending()
	p.complete(err)
	return p
}

func (p *Pending) complete(err error) {
	p.err = err
	close(p.done)
}

// Done закрывается после завершения операции.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err возвращает результат завершённой операции; до завершения всегда nil.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait блокируется до завершения операции или отмены ctx.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
