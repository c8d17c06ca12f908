package dbmysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFriendshipBeforeSave_OrdersPair(t *testing.T) {
	f := &Friendship{User1ID: 9, User2ID: 4}
	require.NoError(t, f.BeforeSave(nil))
	require.Equal(t, uint64(4), f.User1ID)
	require.Equal(t, uint64(9), f.User2ID)

	// Already ordered pairs stay put.
	require.NoError(t, f.BeforeSave(nil))
	require.Equal(t, uint64(4), f.User1ID)
	require.Equal(t, uint64(9), f.User2ID)
}

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(7, 3)
	require.Equal(t, uint64(3), a)
	require.Equal(t, uint64(7), b)

	a, b = NormalizePair(3, 7)
	require.Equal(t, uint64(3), a)
	require.Equal(t, uint64(7), b)
}

func TestFriendship_InvolvesAndOtherUser(t *testing.T) {
	f := &Friendship{User1ID: 3, User2ID: 7}

	require.True(t, f.Involves(3))
	require.True(t, f.Involves(7))
	require.False(t, f.Involves(5))

	require.Equal(t, uint64(7), f.OtherUser(3))
	require.Equal(t, uint64(3), f.OtherUser(7))
}
