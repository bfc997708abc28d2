/*
Package asyncslice provides asynchronous counterparts of the usual slice iteration
operations ([Map], [Filter], [Reduce], [ForEach], [Find], [Sort], ...) for callbacks
that do blocking work per element, such as a network call or a file read.

Every callback receives a [context.Context], the current element, its index and the
collection being iterated, and returns a result and an error:

	users, err := asyncslice.Map(ctx, ids, func(ctx context.Context, id string, i int, ids []string) (User, error) {
		return client.GetUser(ctx, id)
	})

# Ordering

Callbacks run one at a time, in ascending index order, on the calling goroutine.
Index i+1 is never started before the call for index i has returned. Side effects
made by callbacks (logging, writes) are therefore observed in the same order as the
input. [ParallelMap] is the one exception: it overlaps the calls and only keeps the
results in input order.

# Errors

The first error returned by a callback stops the iteration and is returned unchanged,
so errors.Is and == comparisons against the original error hold. No partial result is
returned together with an error. A callback panic is recovered: an error value is
returned as-is, anything else becomes a [*PanicError].

A nil callback is rejected with an [*InvocationError] before any element is visited.

# Receiver

[WithReceiver] replaces the collection argument passed to callbacks. It only changes
what callbacks see; the elements iterated are always those of the input slice.
*/
package asyncslice
