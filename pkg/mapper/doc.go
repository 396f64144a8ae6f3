// Package mapper resolves, at runtime, a previously registered pure
// transformation function for an ordered pair of types and applies it.
//
// Two call forms exist for single values and for collections each:
//
//   - explicit: the caller states both types as type parameters,
//     mapper.Map[User, UserDto](m, user). This goes straight to the registry.
//
//   - inferred: the caller supplies a runtime value and the desired target
//     type, m.Map(user, reflect.TypeOf(UserDto{})). The first call for a pair
//     builds a type-erased invoker and caches it; every later call is a
//     direct function invocation without reflection.
//
// Transformers enter the registry either through a batch Register call,
// typically fed by an external discovery step, or lazily through a Provider,
// the boundary to an IoC container. A batch is validated as a whole: if any
// key would receive more than one transformer, the entire batch is rejected
// with a ConfigurationError listing every conflict.
//
// The registry and the dispatch cache are safe for concurrent first use. The
// contract is get-or-create: racing goroutines may compute a value twice, one
// result wins and everybody observes the winner. The dispatch cache is
// bounded by a soft ceiling and cleared as a whole when crossed; entries
// repopulate lazily.
//
// Mapping is pure CPU work. There is no context, no cancellation and no
// retry; a transformer's error reaches the caller unwrapped.
package mapper
