package asyncslice

import "fmt"

// binding produces the (value, index, collection) arguments for each callback
// call of one operation. collection is the receiver when one was supplied.
type binding[T any] struct {
	items      []T
	collection []T
}

func bind[T any](op string, items []T, o *options) (binding[T], error) {
	b := binding[T]{items: items, collection: items}
	if o.receiver == nil {
		return b, nil
	}
	receiver, ok := o.receiver.([]T)
	if !ok {
		return b, &InvocationError{
			Op:  op,
			Arg: fmt.Sprintf("receiver %T for %T", o.receiver, items),
			Err: ErrReceiverType,
		}
	}
	b.collection = receiver
	return b, nil
}

func (b binding[T]) at(i int) (T, int, []T) {
	return b.items[i], i, b.collection
}
