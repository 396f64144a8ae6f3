package mapper

// Provider is the boundary to an external source of transformers, typically
// an IoC container. Provide returns the transformer for a key or reports it
// as absent. Absent is absent: the registry does not care whether the pair is
// not registered yet or never will be.
type Provider interface {
	Provide(key Key) (Transformer, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(key Key) (Transformer, bool)

func (f ProviderFunc) Provide(key Key) (Transformer, bool) {
	return f(key)
}

// NewNopProvider creates a Provider which never has anything.
func NewNopProvider() Provider {
	return ProviderFunc(func(_ Key) (Transformer, bool) {
		return nil, false
	})
}

// NewChainProvider creates a Provider consulting the given providers in
// order. The first provider which has a transformer for the key wins.
func NewChainProvider(providers ...Provider) Provider {
	return ProviderFunc(func(key Key) (Transformer, bool) {
		for _, provider := range providers {
			if transformer, ok := provider.Provide(key); ok {
				return transformer, true
			}
		}

		return nil, false
	})
}
