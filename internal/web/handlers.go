package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"socialnet/internal/common"
	"socialnet/internal/config"
	"socialnet/internal/feed"
	"socialnet/internal/notif"
	"socialnet/internal/user"
)

// Handler translates HTTP requests into service calls and view renders.
// Identity always flows in as explicit parameters; the only context read is
// the session claims set by the middleware.
type Handler struct {
	users    user.UserService
	friends  user.FriendService
	feed     feed.FeedUsecase
	notifs   notif.NotificationService
	tokens   *common.TokenManager
	cfg      *config.Config
	renderer *Renderer
}

func NewHandler(
	users user.UserService,
	friends user.FriendService,
	feedSvc feed.FeedUsecase,
	notifs notif.NotificationService,
	tokens *common.TokenManager,
	cfg *config.Config,
	renderer *Renderer,
) *Handler {
	return &Handler{
		users:    users,
		friends:  friends,
		feed:     feedSvc,
		notifs:   notifs,
		tokens:   tokens,
		cfg:      cfg,
		renderer: renderer,
	}
}

// viewer returns the authenticated user's claims, or nil for anonymous
// requests.
func viewer(r *http.Request) *common.Claims {
	claims, ok := common.ClaimsFromContext(r.Context())
	if !ok {
		return nil
	}
	return claims
}

func viewerID(r *http.Request) uint64 {
	if claims := viewer(r); claims != nil {
		return claims.UserID
	}
	return 0
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// redirectBack sends the browser to the referring page, or home when the
// referer is absent.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// fail maps the service error taxonomy onto HTTP: validation errors flash
// and bounce back, permission problems are forbidden outright, missing
// resources are 404, everything else is a logged 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case common.IsValidation(err):
		setFlash(w, "error", err.Error())
		redirectBack(w, r)
	case errors.Is(err, common.ErrPermission):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, common.ErrNotFound):
		http.NotFound(w, r)
	default:
		common.Log.WithError(err).Error("request failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// view assembles the common ViewData shell around a page payload.
func (h *Handler) view(w http.ResponseWriter, r *http.Request, data interface{}) *ViewData {
	vd := &ViewData{
		CurrentUser: viewer(r),
		Flash:       popFlash(w, r),
		Data:        data,
	}
	if vd.CurrentUser != nil {
		if count, err := h.notifs.UnreadCount(r.Context(), vd.CurrentUser.UserID); err == nil {
			vd.UnreadCount = count
		}
	}
	return vd
}

type homeView struct {
	Posts     []postView
	EmptyFeed bool
}

// Home renders the feed: personalized for authenticated viewers, global for
// anonymous ones.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	posts, emptyFeed, err := h.feed.ComposeFeed(r.Context(), viewerID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := homeView{
		Posts:     toPostViews(posts, viewerID(r)),
		EmptyFeed: emptyFeed,
	}
	h.renderer.Render(w, "home", h.view(w, r, data))
}
