package user

import (
	"context"

	"github.com/pkg/errors"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
)

type FriendService interface {
	// RequestFriendship creates the canonical pending row for the pair, or
	// returns the existing row untouched. The bool reports whether a new
	// request was created.
	RequestFriendship(ctx context.Context, actorID, targetID uint64) (*dbmysql.Friendship, bool, error)
	AcceptFriendship(ctx context.Context, friendshipID, actingUserID uint64) error
	FriendsOf(ctx context.Context, userID uint64) ([]*dbmysql.User, error)
	FriendshipBetween(ctx context.Context, a, b uint64) (*dbmysql.Friendship, error)
	PendingRequestsFor(ctx context.Context, userID uint64) ([]*dbmysql.Friendship, error)
}

type friendService struct {
	friendRepo FriendRepository
}

func NewFriendService(friendRepo FriendRepository) FriendService {
	return &friendService{friendRepo: friendRepo}
}

func (s *friendService) RequestFriendship(ctx context.Context, actorID, targetID uint64) (*dbmysql.Friendship, bool, error) {
	if actorID == targetID {
		return nil, false, common.NewValidationError("you cannot friend yourself")
	}

	existing, err := s.friendRepo.GetFriendshipByPair(ctx, actorID, targetID)
	if err == nil {
		return existing, false, nil
	}
	if !common.IsRecordNotFound(err) {
		return nil, false, errors.Wrap(err, "looking up friendship")
	}

	u1, u2 := dbmysql.NormalizePair(actorID, targetID)
	friendship := &dbmysql.Friendship{
		User1ID: u1,
		User2ID: u2,
		Status:  dbmysql.FriendshipPending,
	}
	if err := s.friendRepo.CreateFriendship(ctx, friendship); err != nil {
		// Concurrent request for the same pair; the unique index is the
		// arbiter. Report the row the winner created.
		if common.IsDuplicate(err) {
			existing, lookupErr := s.friendRepo.GetFriendshipByPair(ctx, actorID, targetID)
			if lookupErr != nil {
				return nil, false, errors.Wrap(lookupErr, "reloading friendship after conflict")
			}
			return existing, false, nil
		}
		return nil, false, errors.Wrap(err, "creating friendship")
	}

	return friendship, true, nil
}

// AcceptFriendship transitions pending to accepted. Either member of the
// pair may accept, including the original requester; preserved as observed
// from the previous implementation rather than tightened.
func (s *friendService) AcceptFriendship(ctx context.Context, friendshipID, actingUserID uint64) error {
	friendship, err := s.friendRepo.GetFriendshipByID(ctx, friendshipID)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return common.ErrNotFound
		}
		return errors.Wrap(err, "looking up friendship")
	}

	if !friendship.Involves(actingUserID) {
		return common.ErrPermission
	}

	if friendship.Status == dbmysql.FriendshipAccepted {
		return nil
	}

	friendship.Status = dbmysql.FriendshipAccepted
	return s.friendRepo.UpdateFriendship(ctx, friendship)
}

func (s *friendService) FriendsOf(ctx context.Context, userID uint64) ([]*dbmysql.User, error) {
	return s.friendRepo.ListFriends(ctx, userID)
}

// FriendshipBetween returns the canonical row for the pair, or nil when none
// exists.
func (s *friendService) FriendshipBetween(ctx context.Context, a, b uint64) (*dbmysql.Friendship, error) {
	friendship, err := s.friendRepo.GetFriendshipByPair(ctx, a, b)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return friendship, nil
}

func (s *friendService) PendingRequestsFor(ctx context.Context, userID uint64) ([]*dbmysql.Friendship, error) {
	return s.friendRepo.ListPendingRequests(ctx, userID)
}
