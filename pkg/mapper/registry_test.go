package mapper_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/justtrackio/typemapper/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userToDto(source User) (UserDto, error) {
	return UserDto{
		FullName: source.FirstName + " " + source.LastName,
	}, nil
}

func newUserRegistry(t *testing.T) *mapper.Registry {
	registry := mapper.NewRegistry()

	err := registry.Register([]mapper.Registration{
		mapper.NewRegistration(userToDto),
	})
	require.NoError(t, err)

	return registry
}

func TestRegistryResolve(t *testing.T) {
	registry := newUserRegistry(t)

	transformer, err := registry.Resolve(mapper.KeyOf[User, UserDto]())
	require.NoError(t, err)

	out, err := transformer.Transform(User{Id: 1, FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	assert.Equal(t, UserDto{FullName: "John Doe"}, out)
}

func TestRegistryResolveNotFound(t *testing.T) {
	registry := mapper.NewRegistry()
	key := mapper.KeyOf[User, UserDto]()

	// the failure is never cached, every call recomputes it
	for i := 0; i < 3; i++ {
		_, err := registry.Resolve(key)

		var notFound *mapper.NotFoundError
		require.ErrorAs(t, err, &notFound)

		assert.Equal(t, "No mapper registered for mapper_test.User -> mapper_test.UserDto", err.Error())
	}
}

func TestRegistryResolveRetriesProvider(t *testing.T) {
	var transformer mapper.Transformer
	calls := 0

	registry := mapper.NewRegistry(mapper.WithProvider(mapper.ProviderFunc(func(_ mapper.Key) (mapper.Transformer, bool) {
		calls++

		return transformer, transformer != nil
	})))

	key := mapper.KeyOf[User, UserDto]()

	_, err := registry.Resolve(key)
	assert.Error(t, err)

	// the pair becomes available only after the failed first call
	transformer = mapper.NewTransformer(userToDto)

	resolved, err := registry.Resolve(key)
	require.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Equal(t, 2, calls)

	// now it is cached, the provider is not consulted again
	_, err = registry.Resolve(key)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRegistryRegisterConflictInBatch(t *testing.T) {
	registry := mapper.NewRegistry()

	first := mapper.NewRegistration(userToDto)
	first.Name = "UserDtoMapper"

	second := mapper.NewRegistration(func(source User) (UserDto, error) {
		return UserDto{FullName: source.LastName}, nil
	})
	second.Name = "LastNameOnlyMapper"

	err := registry.Register([]mapper.Registration{first, second})

	var confErr *mapper.ConfigurationError
	require.ErrorAs(t, err, &confErr)

	msg := err.Error()
	assert.Contains(t, msg, "UserDtoMapper")
	assert.Contains(t, msg, "LastNameOnlyMapper")
	assert.Contains(t, msg, "User")
	assert.Contains(t, msg, "UserDto")

	require.Len(t, confErr.Conflicts(), 1)
	assert.Equal(t, mapper.KeyOf[User, UserDto](), confErr.Conflicts()[0].Key)

	// no partial commit happened
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryRegisterEnumeratesAllConflicts(t *testing.T) {
	registry := mapper.NewRegistry()

	regs := []mapper.Registration{
		{Key: mapper.KeyOf[User, UserDto](), Transformer: mapper.NewTransformer(userToDto), Name: "A"},
		{Key: mapper.KeyOf[User, UserDto](), Transformer: mapper.NewTransformer(userToDto), Name: "B"},
		{Key: mapper.KeyOf[UserDto, User](), Transformer: mapper.NewTransformer(func(UserDto) (User, error) { return User{}, nil }), Name: "C"},
		{Key: mapper.KeyOf[UserDto, User](), Transformer: mapper.NewTransformer(func(UserDto) (User, error) { return User{}, nil }), Name: "D"},
	}

	err := registry.Register(regs)

	var confErr *mapper.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	require.Len(t, confErr.Conflicts(), 2)

	for _, name := range []string{"A", "B", "C", "D"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestRegistryRegisterConflictWithCommitted(t *testing.T) {
	registry := newUserRegistry(t)

	err := registry.Register([]mapper.Registration{
		{
			Key:         mapper.KeyOf[User, UserDto](),
			Transformer: mapper.NewTransformer(userToDto),
			Name:        "SecondUserDtoMapper",
		},
	})

	var confErr *mapper.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, err.Error(), "SecondUserDtoMapper")
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryRegisterValidBatch(t *testing.T) {
	registry := mapper.NewRegistry()

	err := registry.Register([]mapper.Registration{
		mapper.NewRegistration(userToDto),
		mapper.NewRegistration(func(source UserDto) (string, error) {
			return source.FullName, nil
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, registry.Len())
}

func TestRegistryRegisterMissingTransformer(t *testing.T) {
	registry := mapper.NewRegistry()

	err := registry.Register([]mapper.Registration{
		{Key: mapper.KeyOf[User, UserDto](), Name: "Broken"},
	})

	var argErr *mapper.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.True(t, strings.Contains(err.Error(), "Broken"))
}

type userTransformer struct {
	name string
}

func (t *userTransformer) Transform(source any) (any, error) {
	return userToDto(source.(User))
}

func TestRegistryConcurrentResolveConvergesToOneInstance(t *testing.T) {
	provider := mapper.ProviderFunc(func(_ mapper.Key) (mapper.Transformer, bool) {
		// every racer gets a fresh instance, only one may win
		return &userTransformer{name: "candidate"}, true
	})

	registry := mapper.NewRegistry(mapper.WithProvider(provider))
	key := mapper.KeyOf[User, UserDto]()

	const goroutines = 32

	results := make([]mapper.Transformer, goroutines)
	start := make(chan struct{})
	wg := &sync.WaitGroup{}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			<-start

			transformer, err := registry.Resolve(key)
			assert.NoError(t, err)

			results[i] = transformer
		}(i)
	}

	close(start)
	wg.Wait()

	// after the race settles everybody observes the identical stored instance
	settled, err := registry.Resolve(key)
	require.NoError(t, err)

	for i := 0; i < goroutines; i++ {
		assert.Same(t, settled, results[i])
	}

	assert.Equal(t, 1, registry.Len())
}
