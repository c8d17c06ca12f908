package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialnet/internal/dbmysql"
	"socialnet/internal/user"
)

type profileView struct {
	ProfileUser *dbmysql.User
	IsSelf      bool
	Posts       []postView
	Friendship  *dbmysql.Friendship
	Friends     []*dbmysql.User
	Pending     []*dbmysql.Friendship
	Stats       *user.ProfileStats
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	target, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	vid := viewerID(r)
	posts, err := h.feed.PostsBy(r.Context(), target.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var friendship *dbmysql.Friendship
	if vid != target.UserID {
		friendship, err = h.friends.FriendshipBetween(r.Context(), vid, target.UserID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
	}

	friends, err := h.friends.FriendsOf(r.Context(), target.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	stats, err := h.users.Stats(r.Context(), target.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := profileView{
		ProfileUser: target,
		IsSelf:      vid == target.UserID,
		Posts:       toPostViews(posts, vid),
		Friendship:  friendship,
		Friends:     friends,
		Stats:       stats,
	}

	// The viewer's own profile doubles as the inbox for pending requests.
	if data.IsSelf {
		pending, err := h.friends.PendingRequestsFor(r.Context(), vid)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		data.Pending = pending
	}

	h.renderer.Render(w, "profile", h.view(w, r, data))
}

func (h *Handler) FriendRequest(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	target, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	friendship, created, err := h.friends.RequestFriendship(r.Context(), viewerID(r), target.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	switch {
	case created:
		setFlash(w, "success", "Friend request sent.")
	case friendship.Status == dbmysql.FriendshipAccepted:
		setFlash(w, "info", "You are already friends.")
	case friendship.Status == dbmysql.FriendshipPending:
		setFlash(w, "info", "Friend request is already pending.")
	default:
		setFlash(w, "info", "Current status: "+friendship.Status+".")
	}
	http.Redirect(w, r, "/profile/"+username+"/", http.StatusSeeOther)
}

func (h *Handler) FriendAccept(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.friends.AcceptFriendship(r.Context(), id, viewerID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Friend request accepted.")
	redirectBack(w, r)
}
