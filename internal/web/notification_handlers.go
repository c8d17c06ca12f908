package web

import (
	"net/http"

	"socialnet/internal/dbmysql"
)

type notificationsView struct {
	Notifications []dbmysql.Notification
}

func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifs.ListForUser(r.Context(), viewerID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, "notifications", h.view(w, r, notificationsView{Notifications: notifications}))
}

func (h *Handler) NotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.notifs.MarkRead(r.Context(), id, viewerID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/notifications/", http.StatusSeeOther)
}
