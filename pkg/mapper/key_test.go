package mapper_test

import (
	"reflect"
	"testing"

	"github.com/justtrackio/typemapper/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	Id        int
	FirstName string
	LastName  string
}

type UserDto struct {
	FullName string
}

func TestNewKey(t *testing.T) {
	key, err := mapper.NewKey(reflect.TypeOf(User{}), reflect.TypeOf(UserDto{}))
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeOf(User{}), key.Source())
	assert.Equal(t, reflect.TypeOf(UserDto{}), key.Target())
	assert.Equal(t, "mapper_test.User -> mapper_test.UserDto", key.String())
}

func TestNewKeyMissingTypes(t *testing.T) {
	var argErr *mapper.ArgumentError

	_, err := mapper.NewKey(nil, reflect.TypeOf(UserDto{}))
	assert.ErrorAs(t, err, &argErr)

	_, err = mapper.NewKey(reflect.TypeOf(User{}), nil)
	assert.ErrorAs(t, err, &argErr)
}

func TestKeyEquality(t *testing.T) {
	a := mapper.KeyOf[User, UserDto]()

	b, err := mapper.NewKey(reflect.TypeOf(User{}), reflect.TypeOf(UserDto{}))
	require.NoError(t, err)

	reversed := mapper.KeyOf[UserDto, User]()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, reversed)
}

func TestKeyAsMapKey(t *testing.T) {
	seen := map[mapper.Key]int{}

	seen[mapper.KeyOf[User, UserDto]()]++
	seen[mapper.KeyOf[User, UserDto]()]++
	seen[mapper.KeyOf[UserDto, User]()]++

	assert.Equal(t, 2, seen[mapper.KeyOf[User, UserDto]()])
	assert.Equal(t, 1, seen[mapper.KeyOf[UserDto, User]()])
}
