package web

import (
	"net/http"

	"socialnet/internal/dbmysql"
	"socialnet/internal/feed"
)

// postView wraps a post with the viewer-dependent fields templates need.
type postView struct {
	dbmysql.Post
	LikeCount     int
	CommentCount  int
	LikedByViewer bool
	OwnedByViewer bool
	ViewerAuthed  bool
}

func toPostViews(posts []dbmysql.Post, viewerID uint64) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView{
			Post:          p,
			LikeCount:     len(p.Likes),
			CommentCount:  len(p.Comments),
			LikedByViewer: viewerID != 0 && p.LikedBy(viewerID),
			OwnedByViewer: viewerID != 0 && p.UserID == viewerID,
			ViewerAuthed:  viewerID != 0,
		})
	}
	return views
}

type postFormView struct {
	Post *dbmysql.Post // nil on the create form
}

func (h *Handler) PostCreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "post_form", h.view(w, r, postFormView{}))
}

func (h *Handler) PostCreate(w http.ResponseWriter, r *http.Request) {
	if _, err := h.feed.CreatePost(r.Context(), viewerID(r), r.FormValue("content")); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Post created.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) PostEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := h.feed.GetPost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, "post_form", h.view(w, r, postFormView{Post: post}))
}

func (h *Handler) PostEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.feed.EditPost(r.Context(), viewerID(r), id, r.FormValue("content")); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Post updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type confirmDeleteView struct {
	Post *dbmysql.Post
}

func (h *Handler) PostDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, err := h.feed.GetPost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, "confirm_delete", h.view(w, r, confirmDeleteView{Post: post}))
}

func (h *Handler) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.feed.DeletePost(r.Context(), viewerID(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Post deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) LikeToggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	result, err := h.feed.ToggleLike(r.Context(), viewerID(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if result == feed.Liked {
		setFlash(w, "success", "Liked the post.")
	} else {
		setFlash(w, "info", "Unliked the post.")
	}
	redirectBack(w, r)
}

func (h *Handler) CommentAdd(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := h.feed.AddComment(r.Context(), viewerID(r), id, r.FormValue("content")); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Comment added.")
	redirectBack(w, r)
}

func (h *Handler) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.feed.DeleteComment(r.Context(), viewerID(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	setFlash(w, "success", "Comment deleted.")
	redirectBack(w, r)
}
