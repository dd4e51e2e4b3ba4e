package notification

import "context"

// Worker drains the publisher's buffer and hands each event to the
// dispatcher. Dispatch absorbs its own failures, so the loop only stops
// when the context does.
type Worker struct {
	dispatcher *Dispatcher
	inbox      <-chan Event
}

func NewWorker(dispatcher *Dispatcher, inbox <-chan Event) *Worker {
	return &Worker{dispatcher: dispatcher, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.dispatcher.Dispatch(ctx, event)
		}
	}
}
